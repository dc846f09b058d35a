// Package repository 提供数据访问层的具体实现
// 本文件实现 TermRepository 接口
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// termRepository TermRepository 接口的实现
type termRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewTermRepository 创建 TermRepository 实例
func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

// FindByIdAndGroup 在群组范围内根据主键查找条款
func (r *termRepository) FindByIdAndGroup(id, groupId uint) (*model.Term, error) {
	var term model.Term
	if err := r.db.Where("id = ? AND group_id = ?", id, groupId).First(&term).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询条款 id=%d group_id=%d", id, groupId)
	}
	return &term, nil
}

// FindByGroupId 查找群组的所有条款
func (r *termRepository) FindByGroupId(groupId uint) ([]model.Term, error) {
	var terms []model.Term
	if err := r.db.Where("group_id = ?", groupId).Order("id").Find(&terms).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询条款 group_id=%d", groupId)
	}
	return terms, nil
}

// Create 创建条款
func (r *termRepository) Create(term *model.Term) error {
	if err := r.db.Create(term).Error; err != nil {
		return wrapDBError(err, "创建条款")
	}
	return nil
}

// Update 更新条款（全字段更新）
// 已引用此条款的空间与预约保存的是快照，不受更新影响
func (r *termRepository) Update(term *model.Term) error {
	if err := r.db.Save(term).Error; err != nil {
		return wrapDBError(err, "更新条款")
	}
	return nil
}

// Delete 删除条款
func (r *termRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Term{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除条款 id=%d", id)
	}
	return nil
}
