package router

import (
	"github.com/gin-gonic/gin"
)

// registerAuthRoutes 注册认证路由
// 注册、登录和刷新令牌都无需携带 Access Token
func (rt *Router) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", rt.handlers.Auth.Register)
		auth.POST("/login", rt.handlers.Auth.Login)
		auth.POST("/refreshToken", rt.handlers.Auth.RefreshToken)
	}
}
