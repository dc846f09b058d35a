package request

// ReissueInviteCodeRequest 更换群组邀请码请求
// 旧邀请码立即作废
// 使用位置:
//   - internal/handler/group_handler.go: ReissueInviteCodeHandler
type ReissueInviteCodeRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
}
