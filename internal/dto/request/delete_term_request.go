package request

// DeleteTermRequest 删除条款请求
// 使用位置:
//   - internal/handler/space_handler.go: DeleteTermHandler
type DeleteTermRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	TermId  uint `json:"term_id" binding:"required"`
}
