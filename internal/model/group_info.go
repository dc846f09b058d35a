package model

import (
	"gorm.io/gorm"
)

// GroupInfo 群组信息
// 群组由唯一的管理员创建，成员关系见 GroupMember
type GroupInfo struct {
	gorm.Model
	Name       string `gorm:"column:name;uniqueIndex;type:varchar(20);not null;comment:群组名称"`
	ManagerId  uint   `gorm:"column:manager_id;index;not null;comment:群组管理员用户id"`
	IsPublic   bool   `gorm:"column:is_public;default:false;comment:是否公开，false为私密群组"`
	InviteCode string `gorm:"column:invite_code;uniqueIndex;type:char(5);not null;comment:群组邀请码"`
}

func (GroupInfo) TableName() string {
	return "group_info"
}
