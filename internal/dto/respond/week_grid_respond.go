package respond

// WeekGridCell 周视图中的单个时段格
// 空闲格 ReservationId 为 0
// 使用位置:
//   - internal/service/reservation/schedule.go: buildWeekGrid
type WeekGridCell struct {
	// Wd 周内偏移，0=周一 ... 6=周日
	Wd int `json:"wd"`
	// Hour 时段起始整点 0~23
	Hour int `json:"hour"`
	// Free 该时段是否空闲
	Free bool `json:"free"`
	// ReservationId 占用该时段的预约ID，空闲时为 0
	ReservationId uint `json:"reservation_id,omitempty"`
	// MemberId 预约人用户ID，空闲时为 0
	MemberId uint `json:"member_id,omitempty"`
	// MemberNickname 预约人昵称
	MemberNickname string `json:"member_nickname,omitempty"`
	// Mine 该预约是否属于请求人
	Mine bool `json:"mine,omitempty"`
}

// WeekGridRespond 空间周视图响应
// 7 天 x 24 小时的完整时段网格，外层索引为 wd，内层为 hour
// 使用位置:
//   - internal/service/reservation/service.go: WeekGrid
type WeekGridRespond struct {
	SpaceId   uint   `json:"space_id"`
	SpaceName string `json:"space_name"`
	// TermBody 空间条款快照，预约前展示给成员
	TermBody string `json:"term_body"`
	// Monday 本周周一日期，格式 2006-01-02
	Monday string `json:"monday"`
	// Days 周一到周日的日期串
	Days [7]string `json:"days"`
	// Cells 时段网格，Cells[wd][hour]
	Cells [7][24]WeekGridCell `json:"cells"`
	// PrevWeek/NextWeek/ThisWeek 周间导航的查询参数串
	PrevWeek string `json:"prev_week"`
	NextWeek string `json:"next_week"`
	ThisWeek string `json:"this_week"`
}
