// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"time"

	"kama_reservation_server/internal/model"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindById 根据主键查找用户
	FindById(id uint) (*model.UserInfo, error)
	// FindByUsername 根据登录账号查找用户
	FindByUsername(username string) (*model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
	// Update 更新用户信息
	Update(user *model.UserInfo) error
}

// GroupRepository 群组数据访问接口
type GroupRepository interface {
	// FindById 根据主键查找群组
	FindById(id uint) (*model.GroupInfo, error)
	// FindByInviteCode 根据邀请码查找群组
	FindByInviteCode(code string) (*model.GroupInfo, error)
	// FindByManagerId 查找某用户管理的所有群组
	FindByManagerId(managerId uint) ([]model.GroupInfo, error)
	// CountByManagerId 统计某用户管理的群组数量（管理上限校验用）
	CountByManagerId(managerId uint) (int64, error)
	// Create 创建群组
	Create(group *model.GroupInfo) error
	// Update 更新群组信息（全字段更新）
	Update(group *model.GroupInfo) error
}

// GroupMemberRepository 群组成员数据访问接口
type GroupMemberRepository interface {
	// FindByGroupAndUser 查找成员关系，用于成员资格校验
	FindByGroupAndUser(groupId, userId uint) (*model.GroupMember, error)
	// FindByGroupId 查找群组的所有成员关系
	FindByGroupId(groupId uint) ([]model.GroupMember, error)
	// FindByUserId 查找用户加入的所有群组的成员关系
	FindByUserId(userId uint) ([]model.GroupMember, error)
	// Create 添加群组成员
	Create(member *model.GroupMember) error
	// Delete 移除群组成员（硬删除，时段可复用）
	Delete(groupId, userId uint) error
}

// PermissionRepository 权限标签与授予关系数据访问接口
type PermissionRepository interface {
	// FindTagById 根据主键查找权限标签
	FindTagById(id uint) (*model.PermissionTag, error)
	// FindTagsByGroupId 查找群组的所有权限标签
	FindTagsByGroupId(groupId uint) ([]model.PermissionTag, error)
	// FindTagByGroupAndBody 根据群组和标签内容查找标签
	FindTagByGroupAndBody(groupId uint, body string) (*model.PermissionTag, error)
	// CreateTag 创建权限标签
	CreateTag(tag *model.PermissionTag) error
	// FindTagsOfUser 查找用户在群组内持有的所有标签
	FindTagsOfUser(groupId, userId uint) ([]model.PermissionTag, error)
	// HasGrant 判断用户是否持有指定标签
	HasGrant(tagId, userId uint) (bool, error)
	// CreateGrant 授予标签
	CreateGrant(grant *model.PermissionGrant) error
	// DeleteGrant 撤销单个标签授予
	DeleteGrant(tagId, userId uint) error
	// DeleteGrantsInGroup 撤销用户在群组内的全部标签授予（移出成员时使用）
	DeleteGrantsInGroup(groupId, userId uint) error
}

// BlockRepository 活动限制数据访问接口
type BlockRepository interface {
	// FindById 根据主键查找限制记录
	FindById(id uint) (*model.Block, error)
	// FindByGroupAndUser 查找某成员在群组内的全部限制记录
	FindByGroupAndUser(groupId, userId uint) ([]model.Block, error)
	// FindActive 查找某成员在群组内指定时刻生效中的限制
	FindActive(groupId, userId uint, now time.Time) ([]model.Block, error)
	// Create 创建限制记录
	Create(block *model.Block) error
	// Delete 删除限制记录
	Delete(id uint) error
}

// JoinRequestRepository 加群申请数据访问接口
type JoinRequestRepository interface {
	// FindByIdAndGroup 在群组范围内根据主键查找申请
	FindByIdAndGroup(id, groupId uint) (*model.JoinRequest, error)
	// FindByGroupId 查找群组的全部待处理申请
	FindByGroupId(groupId uint) ([]model.JoinRequest, error)
	// Create 创建加群申请
	Create(request *model.JoinRequest) error
	// Delete 删除申请（接受/拒绝后的终态，硬删除）
	Delete(id uint) error
}

// TermRepository 条款数据访问接口
type TermRepository interface {
	// FindByIdAndGroup 在群组范围内根据主键查找条款
	FindByIdAndGroup(id, groupId uint) (*model.Term, error)
	// FindByGroupId 查找群组的所有条款
	FindByGroupId(groupId uint) ([]model.Term, error)
	// Create 创建条款
	Create(term *model.Term) error
	// Update 更新条款（全字段更新）
	Update(term *model.Term) error
	// Delete 删除条款
	Delete(id uint) error
}

// SpaceRepository 空间数据访问接口
type SpaceRepository interface {
	// FindByIdAndGroup 在群组范围内根据主键查找空间
	FindByIdAndGroup(id, groupId uint) (*model.Space, error)
	// FindByGroupId 查找群组的所有空间
	FindByGroupId(groupId uint) ([]model.Space, error)
	// Create 创建空间
	Create(space *model.Space) error
	// Update 更新空间（全字段更新）
	Update(space *model.Space) error
	// Delete 删除空间
	Delete(id uint) error
}

// ReservationRepository 预约数据访问接口
type ReservationRepository interface {
	// FindByIdAndSpace 在空间范围内根据主键查找预约
	FindByIdAndSpace(id, spaceId uint) (*model.Reservation, error)
	// FindInRange 查找空间内 [from, to] 区间的全部预约（周视图用）
	FindInRange(spaceId uint, from, to time.Time) ([]model.Reservation, error)
	// ExistsInSlot 判断以 target 起始的一小时时段是否已被占用
	// 判定窗口：dt_from >= target && dt_to < target+1h
	ExistsInSlot(spaceId uint, target time.Time) (bool, error)
	// Create 创建预约，(space_id, dt_from) 冲突时返回 Conflict
	Create(reservation *model.Reservation) error
	// Delete 删除预约（硬删除，释放时段）
	Delete(id uint) error
}
