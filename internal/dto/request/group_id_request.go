package request

// GroupIdRequest 仅携带群组ID的查询请求（GET，query 绑定）
// 使用位置:
//   - internal/handler/group_handler.go: GetGroupInfoHandler, ListMembersHandler,
//     ListPermissionTagsHandler, ListJoinRequestsHandler
//   - internal/handler/space_handler.go: ListTermsHandler, ListSpacesHandler
type GroupIdRequest struct {
	GroupId uint `form:"group_id" binding:"required"`
}
