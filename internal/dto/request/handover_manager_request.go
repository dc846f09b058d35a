package request

// HandoverManagerRequest 移交群组管理权请求
// 使用位置:
//   - internal/handler/group_handler.go: HandoverManagerHandler
type HandoverManagerRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	// UserId 接任管理员的成员用户ID
	UserId uint `json:"user_id" binding:"required"`
}
