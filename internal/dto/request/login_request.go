package request

// LoginRequest 用户登录请求
// 使用位置:
//   - internal/handler/auth_handler.go: LoginHandler
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
