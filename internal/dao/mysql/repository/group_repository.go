// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupRepository 接口，处理群组相关的数据库操作
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// groupRepository GroupRepository 接口的实现
type groupRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewGroupRepository 创建 GroupRepository 实例
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// FindById 根据主键查找群组
func (r *groupRepository) FindById(id uint) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 id=%d", id)
	}
	return &group, nil
}

// FindByInviteCode 根据邀请码查找群组
// 也用于邀请码生成时的碰撞检测
func (r *groupRepository) FindByInviteCode(code string) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.First(&group, "invite_code = ?", code).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 invite_code=%s", code)
	}
	return &group, nil
}

// FindByManagerId 查找某用户管理的所有群组
func (r *groupRepository) FindByManagerId(managerId uint) ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	if err := r.db.Where("manager_id = ?", managerId).Find(&groups).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 manager_id=%d", managerId)
	}
	return groups, nil
}

// CountByManagerId 统计某用户管理的群组数量
func (r *groupRepository) CountByManagerId(managerId uint) (int64, error) {
	var total int64
	if err := r.db.Model(&model.GroupInfo{}).Where("manager_id = ?", managerId).Count(&total).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计群组数 manager_id=%d", managerId)
	}
	return total, nil
}

// Create 创建群组
// 群名或邀请码撞唯一索引时返回 Conflict，由调用方区分处理
func (r *groupRepository) Create(group *model.GroupInfo) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "创建群组")
	}
	return nil
}

// Update 更新群组信息（全字段更新）
func (r *groupRepository) Update(group *model.GroupInfo) error {
	if err := r.db.Save(group).Error; err != nil {
		return wrapDBError(err, "更新群组")
	}
	return nil
}
