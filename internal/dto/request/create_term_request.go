package request

// CreateTermRequest 创建条款请求
// 使用位置:
//   - internal/handler/space_handler.go: CreateTermHandler
type CreateTermRequest struct {
	GroupId uint   `json:"group_id" binding:"required"`
	Title   string `json:"title" binding:"required,max=255"`
	Body    string `json:"body"`
}
