package model

import (
	"gorm.io/gorm"
)

// Term 空间预约使用的约定条款
// 一个群组可登记多份条款，一份条款可被多个空间引用
type Term struct {
	gorm.Model
	GroupId uint   `gorm:"column:group_id;index;not null;comment:所属群组ID"`
	Title   string `gorm:"column:title;type:varchar(255);not null;comment:条款标题"`
	Body    string `gorm:"column:body;type:text;comment:条款正文"`
}

func (Term) TableName() string {
	return "term"
}
