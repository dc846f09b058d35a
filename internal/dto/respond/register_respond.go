package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - internal/service/auth/service.go: Register
type RegisterRespond struct {
	UserId   uint   `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}
