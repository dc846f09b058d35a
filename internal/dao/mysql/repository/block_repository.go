// Package repository 提供数据访问层的具体实现
// 本文件实现 BlockRepository 接口，处理活动限制相关的数据库操作
package repository

import (
	"time"

	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// blockRepository BlockRepository 接口的实现
type blockRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewBlockRepository 创建 BlockRepository 实例
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

// FindById 根据主键查找限制记录
func (r *blockRepository) FindById(id uint) (*model.Block, error) {
	var block model.Block
	if err := r.db.First(&block, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询限制记录 id=%d", id)
	}
	return &block, nil
}

// FindByGroupAndUser 查找某成员在群组内的全部限制记录（含已过期）
func (r *blockRepository) FindByGroupAndUser(groupId, userId uint) ([]model.Block, error) {
	var blocks []model.Block
	if err := r.db.Where("group_id = ? AND user_id = ?", groupId, userId).Order("dt_from").Find(&blocks).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询限制记录 group_id=%d user_id=%d", groupId, userId)
	}
	return blocks, nil
}

// FindActive 查找指定时刻生效中的限制
// 生效条件：dt_from <= now <= dt_to
func (r *blockRepository) FindActive(groupId, userId uint, now time.Time) ([]model.Block, error) {
	var blocks []model.Block
	if err := r.db.Where("group_id = ? AND user_id = ? AND dt_from <= ? AND dt_to >= ?",
		groupId, userId, now, now).Find(&blocks).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询生效限制 group_id=%d user_id=%d", groupId, userId)
	}
	return blocks, nil
}

// Create 创建限制记录
func (r *blockRepository) Create(block *model.Block) error {
	if err := r.db.Create(block).Error; err != nil {
		return wrapDBError(err, "创建限制记录")
	}
	return nil
}

// Delete 删除限制记录
func (r *blockRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Block{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除限制记录 id=%d", id)
	}
	return nil
}
