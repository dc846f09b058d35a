// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupMemberRepository 接口，处理群组成员相关的数据库操作
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// groupMemberRepository GroupMemberRepository 接口的实现
type groupMemberRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewGroupMemberRepository 创建 GroupMemberRepository 实例
func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// FindByGroupAndUser 查找成员关系
// 用于成员资格校验，查不到返回 NotFound
func (r *groupMemberRepository) FindByGroupAndUser(groupId, userId uint) (*model.GroupMember, error) {
	var member model.GroupMember
	if err := r.db.Where("group_id = ? AND user_id = ?", groupId, userId).First(&member).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组成员 group_id=%d user_id=%d", groupId, userId)
	}
	return &member, nil
}

// FindByGroupId 查找群组的所有成员关系
func (r *groupMemberRepository) FindByGroupId(groupId uint) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("group_id = ?", groupId).Order("id").Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组成员 group_id=%d", groupId)
	}
	return members, nil
}

// FindByUserId 查找用户加入的所有群组的成员关系
func (r *groupMemberRepository) FindByUserId(userId uint) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("user_id = ?", userId).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户所在群组 user_id=%d", userId)
	}
	return members, nil
}

// Create 添加群组成员
// (group_id, user_id) 已存在时返回 Conflict
func (r *groupMemberRepository) Create(member *model.GroupMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建群组成员")
	}
	return nil
}

// Delete 移除群组成员
// 硬删除，(group_id, user_id) 可被再次加入时复用
func (r *groupMemberRepository) Delete(groupId, userId uint) error {
	if err := r.db.Where("group_id = ? AND user_id = ?", groupId, userId).Delete(&model.GroupMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组成员 group_id=%d user_id=%d", groupId, userId)
	}
	return nil
}
