package request

// UpdateMemberPermissionRequest 更新成员权限标签请求
// Tags 为空格分隔的标签串，作为该成员标签集合的完整目标状态：
// 缺少的标签会被授予，多余的授予会被撤销，群内不存在的标签自动创建
// 使用位置:
//   - internal/handler/group_handler.go: UpdateMemberPermissionHandler
type UpdateMemberPermissionRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	// UserId 目标成员用户ID
	UserId uint `json:"user_id" binding:"required"`
	// Tags 空格分隔的标签串，如 "钥匙 驾照"，空串表示清空
	Tags string `json:"tags"`
}
