// Package repository 提供数据访问层的具体实现
// 本文件实现 JoinRequestRepository 接口，处理加群申请相关的数据库操作
package repository

import (
	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// joinRequestRepository JoinRequestRepository 接口的实现
type joinRequestRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewJoinRequestRepository 创建 JoinRequestRepository 实例
func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

// FindByIdAndGroup 在群组范围内根据主键查找申请
// 已处理（已删除）的申请返回 NotFound，保证接受/拒绝是幂等终态
func (r *joinRequestRepository) FindByIdAndGroup(id, groupId uint) (*model.JoinRequest, error) {
	var request model.JoinRequest
	if err := r.db.Where("id = ? AND group_id = ?", id, groupId).First(&request).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询加群申请 id=%d group_id=%d", id, groupId)
	}
	return &request, nil
}

// FindByGroupId 查找群组的全部待处理申请
func (r *joinRequestRepository) FindByGroupId(groupId uint) ([]model.JoinRequest, error) {
	var requests []model.JoinRequest
	if err := r.db.Where("group_id = ?", groupId).Order("id").Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询加群申请 group_id=%d", groupId)
	}
	return requests, nil
}

// Create 创建加群申请
// 同一用户对同一群组重复申请撞 (group_id, user_id) 唯一索引，返回 Conflict
func (r *joinRequestRepository) Create(request *model.JoinRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "创建加群申请")
	}
	return nil
}

// Delete 删除申请（硬删除）
func (r *joinRequestRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.JoinRequest{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除加群申请 id=%d", id)
	}
	return nil
}
