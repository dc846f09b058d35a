package request

// WithdrawRequest 退出群组请求
// 管理员不能退出自己管理的群组，须先移交管理权
// 使用位置:
//   - internal/handler/group_handler.go: WithdrawHandler
type WithdrawRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
}
