package respond

// GroupInfoRespond 群组信息响应
// InviteCode 只在请求人是群组成员时填充
// 使用位置:
//   - internal/service/group/service.go: GetGroupInfo, CreateGroup
type GroupInfoRespond struct {
	GroupId    uint   `json:"group_id"`
	Name       string `json:"name"`
	ManagerId  uint   `json:"manager_id"`
	IsPublic   bool   `json:"is_public"`
	InviteCode string `json:"invite_code,omitempty"`
	CreatedAt  string `json:"created_at"`
	// IsManager 请求人是否为该群组管理员
	IsManager bool `json:"is_manager"`
}
