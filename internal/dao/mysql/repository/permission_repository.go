// Package repository 提供数据访问层的具体实现
// 本文件实现 PermissionRepository 接口，处理权限标签与授予关系的数据库操作
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// permissionRepository PermissionRepository 接口的实现
type permissionRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewPermissionRepository 创建 PermissionRepository 实例
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// FindTagById 根据主键查找权限标签
func (r *permissionRepository) FindTagById(id uint) (*model.PermissionTag, error) {
	var tag model.PermissionTag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询权限标签 id=%d", id)
	}
	return &tag, nil
}

// FindTagsByGroupId 查找群组的所有权限标签
func (r *permissionRepository) FindTagsByGroupId(groupId uint) ([]model.PermissionTag, error) {
	var tags []model.PermissionTag
	if err := r.db.Where("group_id = ?", groupId).Order("id").Find(&tags).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询权限标签 group_id=%d", groupId)
	}
	return tags, nil
}

// FindTagByGroupAndBody 根据群组和标签内容查找标签
// 批量更新标签时的 get-or-create 入口
func (r *permissionRepository) FindTagByGroupAndBody(groupId uint, body string) (*model.PermissionTag, error) {
	var tag model.PermissionTag
	if err := r.db.Where("group_id = ? AND body = ?", groupId, body).First(&tag).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询权限标签 group_id=%d body=%s", groupId, body)
	}
	return &tag, nil
}

// CreateTag 创建权限标签
// (group_id, body) 已存在时返回 Conflict
func (r *permissionRepository) CreateTag(tag *model.PermissionTag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return wrapDBError(err, "创建权限标签")
	}
	return nil
}

// FindTagsOfUser 查找用户在群组内持有的所有标签
// JOIN 授予表取出标签实体
func (r *permissionRepository) FindTagsOfUser(groupId, userId uint) ([]model.PermissionTag, error) {
	var tags []model.PermissionTag
	if err := r.db.Table("permission_tag").
		Joins("JOIN permission_grant ON permission_grant.tag_id = permission_tag.id").
		Where("permission_grant.group_id = ? AND permission_grant.user_id = ?", groupId, userId).
		Where("permission_tag.deleted_at IS NULL").
		Order("permission_tag.id").
		Find(&tags).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户权限标签 group_id=%d user_id=%d", groupId, userId)
	}
	return tags, nil
}

// HasGrant 判断用户是否持有指定标签
func (r *permissionRepository) HasGrant(tagId, userId uint) (bool, error) {
	var total int64
	if err := r.db.Model(&model.PermissionGrant{}).
		Where("tag_id = ? AND user_id = ?", tagId, userId).
		Count(&total).Error; err != nil {
		return false, wrapDBErrorf(err, "查询权限授予 tag_id=%d user_id=%d", tagId, userId)
	}
	return total > 0, nil
}

// CreateGrant 授予标签
// (tag_id, user_id) 已存在时返回 Conflict
func (r *permissionRepository) CreateGrant(grant *model.PermissionGrant) error {
	if err := r.db.Create(grant).Error; err != nil {
		return wrapDBError(err, "创建权限授予")
	}
	return nil
}

// DeleteGrant 撤销单个标签授予（硬删除）
func (r *permissionRepository) DeleteGrant(tagId, userId uint) error {
	if err := r.db.Where("tag_id = ? AND user_id = ?", tagId, userId).Delete(&model.PermissionGrant{}).Error; err != nil {
		return wrapDBErrorf(err, "删除权限授予 tag_id=%d user_id=%d", tagId, userId)
	}
	return nil
}

// DeleteGrantsInGroup 撤销用户在群组内的全部标签授予
// 移出成员的事务里与成员关系删除一起执行
func (r *permissionRepository) DeleteGrantsInGroup(groupId, userId uint) error {
	if err := r.db.Where("group_id = ? AND user_id = ?", groupId, userId).Delete(&model.PermissionGrant{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组内权限授予 group_id=%d user_id=%d", groupId, userId)
	}
	return nil
}
