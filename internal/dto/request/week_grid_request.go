package request

// WeekGridRequest 空间周视图查询请求（GET，query 绑定）
// Year/Month/Day 为字符串形式的日期参数：任一分量缺省时展示当前周，
// 给全了但不合法时报参数错误；一周从周一起始
// 使用位置:
//   - internal/handler/reservation_handler.go: WeekGridHandler
type WeekGridRequest struct {
	GroupId uint   `form:"group_id" binding:"required"`
	SpaceId uint   `form:"space_id" binding:"required"`
	Year    string `form:"year"`
	Month   string `form:"month"`
	Day     string `form:"day"`
}
