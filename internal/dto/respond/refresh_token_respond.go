package respond

// RefreshTokenRespond 刷新令牌响应
// 使用位置:
//   - internal/service/auth/service.go: RefreshToken
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
