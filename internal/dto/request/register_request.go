package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/auth_handler.go: RegisterHandler
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Nickname string `json:"nickname" binding:"required,max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}
