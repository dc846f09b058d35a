package respond

// SlotEventRespond 时段变更事件 (WebSocket)
// 预约创建/取消时推送给订阅该空间看板的连接
// 使用位置:
//   - internal/service/reservation/service.go: Book, DeleteReservation
//   - internal/gateway/websocket/hub.go: 广播载荷
type SlotEventRespond struct {
	// Action 事件类型: booked / cancelled
	Action        string `json:"action"`
	SpaceId       uint   `json:"space_id"`
	ReservationId uint   `json:"reservation_id"`
	MemberId      uint   `json:"member_id"`
	DtFrom        string `json:"dt_from"`
	DtTo          string `json:"dt_to"`
}
