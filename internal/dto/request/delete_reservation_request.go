package request

// DeleteReservationRequest 取消预约请求
// 仅预约人本人或群组管理员可取消
// 使用位置:
//   - internal/handler/reservation_handler.go: DeleteReservationHandler
type DeleteReservationRequest struct {
	GroupId       uint `json:"group_id" binding:"required"`
	SpaceId       uint `json:"space_id" binding:"required"`
	ReservationId uint `json:"reservation_id" binding:"required"`
}
