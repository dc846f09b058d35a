package request

// UpdateSpaceRequest 更新空间请求
// 换绑条款会重新定格条款快照；解绑条款清空快照
// 使用位置:
//   - internal/handler/space_handler.go: UpdateSpaceHandler
type UpdateSpaceRequest struct {
	GroupId uint   `json:"group_id" binding:"required"`
	SpaceId uint   `json:"space_id" binding:"required"`
	Name    string `json:"name" binding:"required,max=255"`
	TermId  *uint  `json:"term_id"`
	// RequiredPermissionId 预约所需权限标签ID，为空表示无权限要求
	RequiredPermissionId *uint `json:"required_permission_id"`
}
