// Package reservation 提供预约相关的业务逻辑
// 本文件实现周视图网格的日期计算和构建
package reservation

import (
	"fmt"
	"strconv"
	"time"

	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/errorx"
)

// parseCalendarDate 解析 year/month/day 字符串形式的日期参数
// 任一分量缺失或为 0 时返回 fallback 对应的日期；
// 非数字或数值越界时返回 InvalidParam
func parseCalendarDate(year, month, day string, fallback time.Time) (time.Time, error) {
	if year == "" || month == "" || day == "" {
		return fallback, nil
	}
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, errorx.New(errorx.CodeInvalidParam, "日期参数格式错误")
	}
	// 分量为 0 按未提供处理
	if y == 0 || m == 0 || d == 0 {
		return fallback, nil
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, errorx.New(errorx.CodeInvalidParam, "日期参数超出范围")
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	// time.Date 会把 2月30日 之类悄悄进位，进位了就说明日期不合法
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, errorx.New(errorx.CodeInvalidParam, "日期不合法")
	}
	return t, nil
}

// weekStart 返回 t 所在周的周一 00:00:00
// 一周从周一开始，周日属于上一个周一开启的周
func weekStart(t time.Time) time.Time {
	// time.Weekday 以周日为 0，换算成周一为 0 的偏移
	wd := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -wd)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// slotTime 周一锚点 + 周内偏移和整点，得到时段起始时刻
func slotTime(monday time.Time, wd, hour int) time.Time {
	day := monday.AddDate(0, 0, wd)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// occupiesSlot 判断预约是否占用以 slot 起始的一小时时段
// 判定窗口为 dt_from >= slot && dt_to < slot+1h，与存储层的查询一致
func occupiesSlot(r *model.Reservation, slot time.Time) bool {
	return !r.DtFrom.Before(slot) && r.DtTo.Before(slot.Add(time.Hour))
}

// navQuery 周间导航用的查询参数串
func navQuery(groupId, spaceId uint, day time.Time) string {
	return fmt.Sprintf("group_id=%d&space_id=%d&year=%d&month=%d&day=%d",
		groupId, spaceId, day.Year(), int(day.Month()), day.Day())
}

// buildWeekGrid 把一周的预约记录铺到 7x24 的时段网格上
// reservations 须已限定在本周范围内；nickname 按预约人ID查昵称
func buildWeekGrid(monday time.Time, reservations []model.Reservation, userId uint,
	nickname func(uint) string) [7][24]respond.WeekGridCell {

	var cells [7][24]respond.WeekGridCell
	for wd := 0; wd < 7; wd++ {
		for hour := 0; hour < 24; hour++ {
			cells[wd][hour] = respond.WeekGridCell{Wd: wd, Hour: hour, Free: true}
		}
	}

	for i := range reservations {
		r := &reservations[i]
		// 预约按整点起始，先按日历日定位候选格，再按占用窗口复核
		// 不能用时长除以 24 小时换算：夏令时切换周存在 23/25 小时的天
		offsetDays := -1
		for wd := 0; wd < 7; wd++ {
			day := monday.AddDate(0, 0, wd)
			if r.DtFrom.Year() == day.Year() && r.DtFrom.YearDay() == day.YearDay() {
				offsetDays = wd
				break
			}
		}
		hour := r.DtFrom.Hour()
		if offsetDays < 0 {
			continue
		}
		if !occupiesSlot(r, slotTime(monday, offsetDays, hour)) {
			continue
		}
		cells[offsetDays][hour] = respond.WeekGridCell{
			Wd:             offsetDays,
			Hour:           hour,
			Free:           false,
			ReservationId:  r.ID,
			MemberId:       r.MemberId,
			MemberNickname: nickname(r.MemberId),
			Mine:           r.MemberId == userId,
		}
	}
	return cells
}
