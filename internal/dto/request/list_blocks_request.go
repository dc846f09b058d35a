package request

// ListBlocksRequest 查询成员限制记录请求（GET，query 绑定）
// UserId 缺省时查询请求人自己的记录
// 使用位置:
//   - internal/handler/group_handler.go: ListBlocksHandler
type ListBlocksRequest struct {
	GroupId uint `form:"group_id" binding:"required"`
	UserId  uint `form:"user_id"`
}
