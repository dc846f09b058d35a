// Package repository 提供数据访问层的具体实现
// 本文件实现 SpaceRepository 接口
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// spaceRepository SpaceRepository 接口的实现
type spaceRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewSpaceRepository 创建 SpaceRepository 实例
func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &spaceRepository{db: db}
}

// FindByIdAndGroup 在群组范围内根据主键查找空间
// 跨群组访问他组空间得到 NotFound，不泄露存在性
func (r *spaceRepository) FindByIdAndGroup(id, groupId uint) (*model.Space, error) {
	var space model.Space
	if err := r.db.Where("id = ? AND group_id = ?", id, groupId).First(&space).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询空间 id=%d group_id=%d", id, groupId)
	}
	return &space, nil
}

// FindByGroupId 查找群组的所有空间
func (r *spaceRepository) FindByGroupId(groupId uint) ([]model.Space, error) {
	var spaces []model.Space
	if err := r.db.Where("group_id = ?", groupId).Order("id").Find(&spaces).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询空间 group_id=%d", groupId)
	}
	return spaces, nil
}

// Create 创建空间
func (r *spaceRepository) Create(space *model.Space) error {
	if err := r.db.Create(space).Error; err != nil {
		return wrapDBError(err, "创建空间")
	}
	return nil
}

// Update 更新空间（全字段更新）
func (r *spaceRepository) Update(space *model.Space) error {
	if err := r.db.Save(space).Error; err != nil {
		return wrapDBError(err, "更新空间")
	}
	return nil
}

// Delete 删除空间
// 既有预约保存的条款快照不受影响
func (r *spaceRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Space{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除空间 id=%d", id)
	}
	return nil
}
