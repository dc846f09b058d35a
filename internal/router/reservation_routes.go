package router

import (
	"github.com/gin-gonic/gin"

	"kama_reservation_server/internal/infrastructure/middleware"
)

// registerReservationRoutes 注册预约路由，全部需要登录
func (rt *Router) registerReservationRoutes(r *gin.Engine) {
	reservation := r.Group("/reservation")
	reservation.Use(middleware.JWTAuth())
	{
		reservation.GET("/weekGrid", rt.handlers.Reservation.WeekGrid)
		reservation.POST("/book", rt.handlers.Reservation.Book)
		reservation.GET("/getReservation", rt.handlers.Reservation.GetReservation)
		reservation.POST("/deleteReservation", rt.handlers.Reservation.DeleteReservation)
	}
}
