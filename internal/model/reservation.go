// Package model 定义数据库实体模型
// 本文件定义预约记录模型
package model

import "time"

// Reservation 预约记录
// 对应数据库 reservation 表
//
// 时段约定：预约按整点开始，dt_to = dt_from + 59分钟
// 占用判定使用 dt_from >= 整点 && dt_to < 整点+1小时 的窗口
// 两者互相配套，任何一侧都不能单独"修正"为整小时
//
// (space_id, dt_from) 唯一索引是并发预约的最终裁决：
// 两个请求同时抢同一时段时，数据库保证至多一条插入成功，
// 失败方收到唯一键冲突并以 Conflict 返回给调用者
//
// 不使用软删除：取消预约必须真正释放 (space_id, dt_from) 时段
type Reservation struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 预约创建时间

	SpaceId  uint `gorm:"column:space_id;uniqueIndex:idx_space_slot;not null;comment:目标空间ID"`
	MemberId uint `gorm:"column:member_id;index;not null;comment:预约人用户ID"`

	// PromisedTermBody 预约时空间条款正文的定格副本，之后条款变化不回写
	PromisedTermBody string `gorm:"column:promised_term_body;type:text;comment:预约时同意的条款正文快照"`

	DtFrom time.Time `gorm:"column:dt_from;uniqueIndex:idx_space_slot;type:datetime;not null;comment:预约开始时间"`
	DtTo   time.Time `gorm:"column:dt_to;type:datetime;not null;comment:预约结束时间"`
}

// TableName 指定表名
func (Reservation) TableName() string {
	return "reservation"
}
