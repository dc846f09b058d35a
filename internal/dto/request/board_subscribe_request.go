package request

// BoardSubscribeRequest 预约看板订阅请求（WebSocket 握手，query 绑定）
// 使用位置:
//   - internal/handler/ws_handler.go: SubscribeBoard
type BoardSubscribeRequest struct {
	GroupId uint `form:"group_id" binding:"required"`
	SpaceId uint `form:"space_id" binding:"required"`
}
