package model

import "time"

// GroupMember 群组成员关联表
// 不使用软删除：成员被移出后可重新加入，(group_id, user_id) 唯一索引不能被历史行占用
type GroupMember struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 加入时间
	GroupId   uint      `gorm:"column:group_id;uniqueIndex:idx_group_user;not null;comment:群组ID"`
	UserId    uint      `gorm:"column:user_id;uniqueIndex:idx_group_user;not null;comment:用户ID"`
}

func (GroupMember) TableName() string {
	return "group_member"
}
