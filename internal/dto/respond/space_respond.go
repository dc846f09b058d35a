package respond

// SpaceRespond 空间响应
// TermBody 是创建/更新空间时定格的条款快照，不随条款后续修改变化
// 使用位置:
//   - internal/service/space/service.go: ListSpaces, CreateSpace, UpdateSpace
type SpaceRespond struct {
	SpaceId uint   `json:"space_id"`
	GroupId uint   `json:"group_id"`
	Name    string `json:"name"`
	TermId  *uint  `json:"term_id"`
	// TermBody 条款正文快照
	TermBody             string `json:"term_body"`
	RequiredPermissionId *uint  `json:"required_permission_id"`
	// RequiredPermissionBody 必需标签的内容，便于前端展示
	RequiredPermissionBody string `json:"required_permission_body,omitempty"`
}
