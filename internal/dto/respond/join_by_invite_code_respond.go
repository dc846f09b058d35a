package respond

// JoinByInviteCodeRespond 凭邀请码加入群组响应
// Joined 为 true 表示已直接入群（公开群组），
// 为 false 表示已生成待管理员处理的加群申请（私密群组）
// 使用位置:
//   - internal/service/group/service.go: JoinByInviteCode
type JoinByInviteCodeRespond struct {
	GroupId uint   `json:"group_id"`
	Name    string `json:"name"`
	Joined  bool   `json:"joined"`
}
