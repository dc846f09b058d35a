// Package model 定义数据库实体模型
// 本文件定义权限标签及其授予关系
package model

import (
	"time"

	"gorm.io/gorm"
)

// PermissionTag 群组内权限标签
// 标签只在所属群组内有效，(group_id, body) 唯一
// 空间可声明一个必需标签，预约时校验成员是否持有
type PermissionTag struct {
	gorm.Model
	GroupId uint   `gorm:"column:group_id;uniqueIndex:idx_group_body;not null;comment:所属群组ID"`
	Body    string `gorm:"column:body;uniqueIndex:idx_group_body;type:varchar(10);not null;comment:标签内容"`
}

func (PermissionTag) TableName() string {
	return "permission_tag"
}

// PermissionGrant 标签授予记录：某用户在某标签的持有者集合中
// 硬删除：撤销后允许再次授予，(tag_id, user_id) 唯一索引不能被历史行占用
// 冗余 group_id 便于按群组撤销与查询用户在群内的标签
type PermissionGrant struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	TagId     uint `gorm:"column:tag_id;uniqueIndex:idx_tag_user;not null;comment:权限标签ID"`
	UserId    uint `gorm:"column:user_id;uniqueIndex:idx_tag_user;not null;comment:用户ID"`
	GroupId   uint `gorm:"column:group_id;index;not null;comment:所属群组ID"`
}

func (PermissionGrant) TableName() string {
	return "permission_grant"
}
