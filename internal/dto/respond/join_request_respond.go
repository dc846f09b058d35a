package respond

// JoinRequestRespond 待处理加群申请响应
// 使用位置:
//   - internal/service/group/service.go: ListJoinRequests
type JoinRequestRespond struct {
	RequestId uint   `json:"request_id"`
	UserId    uint   `json:"user_id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"created_at"`
}
