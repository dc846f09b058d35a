// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"kama_reservation_server/internal/handler"
)

// Router 路由管理器，持有 Handler 聚合实例
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerAuthRoutes(r)        // 认证路由（开放）
	rt.registerGroupRoutes(r)       // 群组路由
	rt.registerSpaceRoutes(r)       // 空间与条款路由
	rt.registerReservationRoutes(r) // 预约路由
	rt.registerWebSocketRoutes(r)   // 预约看板 WebSocket 路由
}
