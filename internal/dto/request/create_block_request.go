package request

// CreateBlockRequest 创建成员活动限制请求
// 时间格式为 "2006-01-02 15:04:05"
// 使用位置:
//   - internal/handler/group_handler.go: CreateBlockHandler
type CreateBlockRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	// UserId 被限制的成员用户ID
	UserId uint   `json:"user_id" binding:"required"`
	DtFrom string `json:"dt_from" binding:"required"`
	DtTo   string `json:"dt_to" binding:"required"`
}
