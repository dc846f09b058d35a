package respond

// ReservationRespond 预约详情响应
// PromisedTermBody 是预约时定格的条款快照
// 使用位置:
//   - internal/service/reservation/service.go: Book, GetReservation
type ReservationRespond struct {
	ReservationId  uint   `json:"reservation_id"`
	SpaceId        uint   `json:"space_id"`
	MemberId       uint   `json:"member_id"`
	MemberNickname string `json:"member_nickname"`
	// PromisedTermBody 预约时同意的条款正文快照
	PromisedTermBody string `json:"promised_term_body"`
	DtFrom           string `json:"dt_from"`
	DtTo             string `json:"dt_to"`
	CreatedAt        string `json:"created_at"`
}
