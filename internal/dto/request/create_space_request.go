package request

// CreateSpaceRequest 创建空间请求
// TermId 和 RequiredPermissionId 可为空，表示无条款/无权限要求
// 使用位置:
//   - internal/handler/space_handler.go: CreateSpaceHandler
type CreateSpaceRequest struct {
	GroupId uint   `json:"group_id" binding:"required"`
	Name    string `json:"name" binding:"required,max=255"`
	// TermId 登记的条款ID，为空表示不挂条款
	TermId *uint `json:"term_id"`
	// RequiredPermissionId 预约所需权限标签ID，为空表示无权限要求
	RequiredPermissionId *uint `json:"required_permission_id"`
}
