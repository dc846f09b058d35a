package request

// DeleteBlockRequest 解除成员活动限制请求
// 使用位置:
//   - internal/handler/group_handler.go: DeleteBlockHandler
type DeleteBlockRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	BlockId uint `json:"block_id" binding:"required"`
}
