// Package model 定义数据库实体模型
// 本文件定义可预约空间模型
package model

import (
	"gorm.io/gorm"
)

// Space 预约对象空间
// 对应数据库 space 表
type Space struct {
	gorm.Model

	// GroupId 所属群组
	GroupId uint `gorm:"column:group_id;index;not null;comment:所属群组ID"`

	// Name 空间名称
	Name string `gorm:"column:name;type:varchar(255);not null;comment:空间名称"`

	// TermId 登记的条款，可为空
	TermId *uint `gorm:"column:term_id;comment:登记条款ID，可为空"`

	// TermBody 条款正文的定格副本
	// 创建/更新空间时从 Term 复制；解除条款时置为空串
	// 之后条款被编辑或删除都不会回写此字段，历史记录与后续修改解耦
	TermBody string `gorm:"column:term_body;type:text;comment:条款正文快照"`

	// RequiredPermissionId 预约所需权限标签，可为空（为空表示无权限要求）
	RequiredPermissionId *uint `gorm:"column:required_permission_id;comment:预约所需权限标签ID，可为空"`
}

// TableName 指定表名
func (Space) TableName() string {
	return "space"
}
