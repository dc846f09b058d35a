package request

// ReservationDetailRequest 预约详情查询请求（GET，query 绑定）
// 使用位置:
//   - internal/handler/reservation_handler.go: GetReservationHandler
type ReservationDetailRequest struct {
	GroupId       uint `form:"group_id" binding:"required"`
	SpaceId       uint `form:"space_id" binding:"required"`
	ReservationId uint `form:"reservation_id" binding:"required"`
}
