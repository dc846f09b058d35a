package request

// JoinByInviteCodeRequest 凭邀请码加入群组请求
// 公开群组直接成为成员，私密群组生成待处理申请
// 使用位置:
//   - internal/handler/group_handler.go: JoinByInviteCodeHandler
type JoinByInviteCodeRequest struct {
	InviteCode string `json:"invite_code" binding:"required,len=5,alphanum"`
}
