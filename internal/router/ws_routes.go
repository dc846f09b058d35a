package router

import (
	"github.com/gin-gonic/gin"

	"kama_reservation_server/internal/infrastructure/middleware"
)

// registerWebSocketRoutes 注册预约看板 WebSocket 路由
// 握手同样走 JWT 认证，前端把 Access Token 放在握手请求头里
func (rt *Router) registerWebSocketRoutes(r *gin.Engine) {
	ws := r.Group("/ws")
	ws.Use(middleware.JWTAuth())
	{
		ws.GET("/board", rt.handlers.Ws.SubscribeBoard)
	}
}
