package request

// BookSlotRequest 预约时段请求
// MondayYear/MondayMonth/MondayDay 为周视图锚定的周一日期，
// Wd 是周内偏移（0=周一 ... 6=周日），Hour 是时段起始整点
// 使用位置:
//   - internal/handler/reservation_handler.go: BookSlotHandler
type BookSlotRequest struct {
	GroupId     uint   `json:"group_id" binding:"required"`
	SpaceId     uint   `json:"space_id" binding:"required"`
	MondayYear  string `json:"monday_year" binding:"required"`
	MondayMonth string `json:"monday_month" binding:"required"`
	MondayDay   string `json:"monday_day" binding:"required"`
	Wd          int    `json:"wd" binding:"min=0,max=6"`
	Hour        int    `json:"hour" binding:"min=0,max=23"`
}
