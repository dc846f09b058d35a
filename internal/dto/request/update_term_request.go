package request

// UpdateTermRequest 更新条款请求
// 已引用此条款的空间和预约保存的是快照，不受更新影响
// 使用位置:
//   - internal/handler/space_handler.go: UpdateTermHandler
type UpdateTermRequest struct {
	GroupId uint   `json:"group_id" binding:"required"`
	TermId  uint   `json:"term_id" binding:"required"`
	Title   string `json:"title" binding:"required,max=255"`
	Body    string `json:"body"`
}
