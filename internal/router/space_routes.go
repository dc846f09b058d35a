package router

import (
	"github.com/gin-gonic/gin"

	"kama_reservation_server/internal/infrastructure/middleware"
)

// registerSpaceRoutes 注册空间与条款路由，全部需要登录
func (rt *Router) registerSpaceRoutes(r *gin.Engine) {
	space := r.Group("/space")
	space.Use(middleware.JWTAuth())
	{
		space.POST("/createTerm", rt.handlers.Space.CreateTerm)
		space.POST("/updateTerm", rt.handlers.Space.UpdateTerm)
		space.POST("/deleteTerm", rt.handlers.Space.DeleteTerm)
		space.GET("/listTerms", rt.handlers.Space.ListTerms)
		space.POST("/createSpace", rt.handlers.Space.CreateSpace)
		space.POST("/updateSpace", rt.handlers.Space.UpdateSpace)
		space.POST("/deleteSpace", rt.handlers.Space.DeleteSpace)
		space.GET("/listSpaces", rt.handlers.Space.ListSpaces)
	}
}
