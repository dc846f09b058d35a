package respond

// PermissionTagRespond 权限标签响应
// 使用位置:
//   - internal/service/group/service.go: ListPermissionTags
type PermissionTagRespond struct {
	TagId uint   `json:"tag_id"`
	Body  string `json:"body"`
}
