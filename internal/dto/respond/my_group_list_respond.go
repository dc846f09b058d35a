package respond

// MyGroupListRespond 我的群组列表响应，管理的和加入的分开展示
// 使用位置:
//   - internal/service/group/service.go: GetMyGroups
type MyGroupListRespond struct {
	// Managed 我管理的群组
	Managed []GroupInfoRespond `json:"managed"`
	// Joined 我加入（非管理）的群组
	Joined []GroupInfoRespond `json:"joined"`
}
