package reservation

import (
	"testing"
	"time"

	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/errorx"
)

// 2025-03-03 是周一
var testMonday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday itself", testMonday, testMonday},
		{"midweek", time.Date(2025, 3, 5, 13, 45, 0, 0, time.Local), testMonday},
		{"saturday", time.Date(2025, 3, 8, 23, 59, 59, 0, time.Local), testMonday},
		// 周日属于上一个周一开启的周
		{"sunday", time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local), testMonday},
		{"next monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), testMonday.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("weekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	fallback := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	got, err := parseCalendarDate("2025", "3", "3", fallback)
	if err != nil || !got.Equal(testMonday) {
		t.Fatalf("valid date: got %v, %v", got, err)
	}

	// 任一分量缺失或为 0 都回落到默认日期
	fallbackCases := [][3]string{
		{"", "", ""},
		{"2025", "", ""},
		{"", "3", "3"},
		{"2025", "3", ""},
		{"0", "3", "3"},
		{"2025", "0", "0"},
	}
	for _, in := range fallbackCases {
		got, err := parseCalendarDate(in[0], in[1], in[2], fallback)
		if err != nil || !got.Equal(fallback) {
			t.Fatalf("parseCalendarDate(%v) = %v, %v, want fallback", in, got, err)
		}
	}

	invalid := [][3]string{
		{"abc", "3", "3"},   // 非数字
		{"2025", "13", "1"}, // 月份越界
		{"2025", "-1", "3"},
		{"2025", "2", "30"}, // 2月30日不存在
	}
	for _, in := range invalid {
		if _, err := parseCalendarDate(in[0], in[1], in[2], fallback); err == nil || errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Fatalf("parseCalendarDate(%v) error = %v, want InvalidParam", in, err)
		}
	}
}

func TestSlotTime(t *testing.T) {
	got := slotTime(testMonday, 2, 10)
	want := time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("slotTime = %v, want %v", got, want)
	}
}

func TestOccupiesSlot(t *testing.T) {
	slot := time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{"standard 59min span", slot, slot.Add(59 * time.Minute), true},
		{"starts mid slot", slot.Add(30 * time.Minute), slot.Add(59 * time.Minute), true},
		// dt_to 与下一个整点相等不算占用本时段
		{"ends exactly at next hour", slot, slot.Add(time.Hour), false},
		{"previous hour", slot.Add(-time.Hour), slot.Add(-time.Minute), false},
		{"next hour", slot.Add(time.Hour), slot.Add(time.Hour + 59*time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &model.Reservation{DtFrom: tt.from, DtTo: tt.to}
			if got := occupiesSlot(r, slot); got != tt.want {
				t.Fatalf("occupiesSlot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildWeekGrid(t *testing.T) {
	reservations := []model.Reservation{
		{
			SpaceId:  1,
			MemberId: 7,
			DtFrom:   slotTime(testMonday, 1, 14),
			DtTo:     slotTime(testMonday, 1, 14).Add(59 * time.Minute),
		},
		{
			SpaceId:  1,
			MemberId: 9,
			DtFrom:   slotTime(testMonday, 6, 23),
			DtTo:     slotTime(testMonday, 6, 23).Add(59 * time.Minute),
		},
	}
	reservations[0].ID = 100
	reservations[1].ID = 101

	nickname := func(userId uint) string {
		if userId == 7 {
			return "张三"
		}
		return "李四"
	}

	cells := buildWeekGrid(testMonday, reservations, 7, nickname)

	occupied := 0
	for wd := 0; wd < 7; wd++ {
		for hour := 0; hour < 24; hour++ {
			c := cells[wd][hour]
			if c.Wd != wd || c.Hour != hour {
				t.Fatalf("cell[%d][%d] carries wd=%d hour=%d", wd, hour, c.Wd, c.Hour)
			}
			if !c.Free {
				occupied++
			}
		}
	}
	if occupied != 2 {
		t.Fatalf("occupied cells = %d, want 2", occupied)
	}

	tue14 := cells[1][14]
	if tue14.Free || tue14.ReservationId != 100 || tue14.MemberId != 7 {
		t.Fatalf("tue14 = %+v", tue14)
	}
	if !tue14.Mine || tue14.MemberNickname != "张三" {
		t.Fatalf("tue14 mine/nickname = %+v", tue14)
	}

	sun23 := cells[6][23]
	if sun23.Free || sun23.Mine || sun23.MemberNickname != "李四" {
		t.Fatalf("sun23 = %+v", sun23)
	}
}

func TestBuildWeekGridIgnoresOutOfWeek(t *testing.T) {
	// 上一周的预约不应落进本周网格
	reservations := []model.Reservation{
		{
			SpaceId:  1,
			MemberId: 7,
			DtFrom:   slotTime(testMonday.AddDate(0, 0, -7), 0, 10),
			DtTo:     slotTime(testMonday.AddDate(0, 0, -7), 0, 10).Add(59 * time.Minute),
		},
	}
	cells := buildWeekGrid(testMonday, reservations, 7, func(uint) string { return "" })
	for wd := 0; wd < 7; wd++ {
		for hour := 0; hour < 24; hour++ {
			if !cells[wd][hour].Free {
				t.Fatalf("cell[%d][%d] unexpectedly occupied", wd, hour)
			}
		}
	}
}

func TestBuildWeekGridDSTTransitionWeek(t *testing.T) {
	// 2025-03-09 周日凌晨美东进入夏令时，该周的周日距周一只有 143 小时
	// 按日历日定位，周日的预约仍应落在第 7 列
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("load tz: %v", err)
	}
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, loc)
	sunday10 := time.Date(2025, 3, 9, 10, 0, 0, 0, loc)
	reservations := []model.Reservation{
		{
			SpaceId:  1,
			MemberId: 7,
			DtFrom:   sunday10,
			DtTo:     sunday10.Add(59 * time.Minute),
		},
	}
	reservations[0].ID = 100

	cells := buildWeekGrid(monday, reservations, 7, func(uint) string { return "张三" })

	if cells[6][10].Free || cells[6][10].ReservationId != 100 {
		t.Fatalf("sunday cell = %+v", cells[6][10])
	}
	occupied := 0
	for wd := 0; wd < 7; wd++ {
		for hour := 0; hour < 24; hour++ {
			if !cells[wd][hour].Free {
				occupied++
			}
		}
	}
	if occupied != 1 {
		t.Fatalf("occupied cells = %d, want 1", occupied)
	}
}

func TestNavQuery(t *testing.T) {
	got := navQuery(3, 8, testMonday)
	want := "group_id=3&space_id=8&year=2025&month=3&day=3"
	if got != want {
		t.Fatalf("navQuery = %q, want %q", got, want)
	}
}
