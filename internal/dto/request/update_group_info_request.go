package request

// UpdateGroupInfoRequest 更新群组信息请求
// 私密转公开时，待处理的加群申请会被一并接受
// 使用位置:
//   - internal/handler/group_handler.go: UpdateGroupInfoHandler
type UpdateGroupInfoRequest struct {
	GroupId  uint   `json:"group_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=20"`
	IsPublic bool   `json:"is_public"`
}
