package respond

// GroupMemberRespond 群组成员响应，附带成员持有的权限标签
// 使用位置:
//   - internal/service/group/service.go: ListMembers
type GroupMemberRespond struct {
	UserId   uint   `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	// IsManager 是否群组管理员
	IsManager bool `json:"is_manager"`
	// Tags 成员在群内持有的权限标签内容
	Tags []string `json:"tags"`
	// JoinedAt 加入时间
	JoinedAt string `json:"joined_at"`
}
