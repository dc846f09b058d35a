package model

import "time"

// JoinRequest 对私密群组的加群申请
// 同一用户对同一群组只能有一条待处理申请
// 接受/拒绝都会删除该行（硬删除），重复处理同一申请会得到 NotFound
type JoinRequest struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 申请时间
	GroupId   uint      `gorm:"column:group_id;uniqueIndex:idx_group_requester;not null;comment:目标群组ID"`
	UserId    uint      `gorm:"column:user_id;uniqueIndex:idx_group_requester;not null;comment:申请用户ID"`
}

func (JoinRequest) TableName() string {
	return "join_request"
}
