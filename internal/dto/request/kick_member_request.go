package request

// KickMemberRequest 移出群组成员请求
// 使用位置:
//   - internal/handler/group_handler.go: KickMemberHandler
type KickMemberRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	// UserId 被移出的成员用户ID
	UserId uint `json:"user_id" binding:"required"`
}
