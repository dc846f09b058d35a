package request

// DeleteSpaceRequest 删除空间请求
// 使用位置:
//   - internal/handler/space_handler.go: DeleteSpaceHandler
type DeleteSpaceRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	SpaceId uint `json:"space_id" binding:"required"`
}
