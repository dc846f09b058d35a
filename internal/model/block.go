package model

import (
	"time"

	"gorm.io/gorm"
)

// Block 群组内活动限制内容
// 限制在 [dt_from, dt_to] 区间内生效，生效期间该成员无法发起预约
type Block struct {
	gorm.Model
	GroupId uint      `gorm:"column:group_id;index:idx_group_user_block;not null;comment:群组ID"`
	UserId  uint      `gorm:"column:user_id;index:idx_group_user_block;not null;comment:被限制用户ID"`
	DtFrom  time.Time `gorm:"column:dt_from;type:datetime;not null;comment:限制开始时间"`
	DtTo    time.Time `gorm:"column:dt_to;type:datetime;not null;comment:限制解除时间"`
}

func (Block) TableName() string {
	return "block"
}

// IsActiveAt 判断限制在指定时刻是否生效
func (b *Block) IsActiveAt(now time.Time) bool {
	return !now.Before(b.DtFrom) && !now.After(b.DtTo)
}
