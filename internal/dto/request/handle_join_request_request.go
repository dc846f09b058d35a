package request

// HandleJoinRequestRequest 处理加群申请请求（接受或拒绝共用）
// 接受和拒绝都是终态操作，申请行被删除，重复处理得到 NotFound
// 使用位置:
//   - internal/handler/group_handler.go: AcceptJoinRequestHandler, RejectJoinRequestHandler
type HandleJoinRequestRequest struct {
	GroupId uint `json:"group_id" binding:"required"`
	// RequestId 加群申请ID
	RequestId uint `json:"request_id" binding:"required"`
}
