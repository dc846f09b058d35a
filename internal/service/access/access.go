// Package access 提供群组访问控制的统一判定
// 群组、空间、预约各 Service 的成员资格、管理员身份、权限标签
// 和活动限制检查都收口到这里，避免判定逻辑散落各处
package access

import (
	"time"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/errorx"
)

// Evaluator 访问控制判定器
type Evaluator struct {
	repos *repository.Repositories
}

// NewEvaluator 创建判定器实例
func NewEvaluator(repos *repository.Repositories) *Evaluator {
	return &Evaluator{repos: repos}
}

// IsManager 判断用户是否为群组管理员
func (e *Evaluator) IsManager(group *model.GroupInfo, userId uint) bool {
	return group.ManagerId == userId
}

// RequireMember 校验用户是群组成员，返回群组信息
// 群组不存在和不是成员统一返回 NotFound，不泄露私密群组的存在性
func (e *Evaluator) RequireMember(groupId, userId uint) (*model.GroupInfo, error) {
	group, err := e.repos.Group.FindById(groupId)
	if err != nil {
		return nil, err
	}
	if _, err := e.repos.Member.FindByGroupAndUser(groupId, userId); err != nil {
		return nil, err
	}
	return group, nil
}

// RequireManager 校验用户是群组管理员，返回群组信息
// 非成员返回 NotFound，是成员但非管理员返回 Forbidden
func (e *Evaluator) RequireManager(groupId, userId uint) (*model.GroupInfo, error) {
	group, err := e.RequireMember(groupId, userId)
	if err != nil {
		return nil, err
	}
	if !e.IsManager(group, userId) {
		return nil, errorx.New(errorx.CodeForbidden, "仅群组管理员可执行此操作")
	}
	return group, nil
}

// HasPermission 判断用户是否满足空间的权限标签要求
// 空间未设置必需标签时人人可约；设置了标签则只看持有与否，管理员也不例外
func (e *Evaluator) HasPermission(space *model.Space, userId uint) (bool, error) {
	if space.RequiredPermissionId == nil {
		return true, nil
	}
	return e.repos.Permission.HasGrant(*space.RequiredPermissionId, userId)
}

// ActiveBlocks 获取用户在群组内当前生效的活动限制
func (e *Evaluator) ActiveBlocks(groupId, userId uint, now time.Time) ([]model.Block, error) {
	return e.repos.Block.FindActive(groupId, userId, now)
}

// IsBlocked 判断用户当前是否被限制活动
func (e *Evaluator) IsBlocked(groupId, userId uint, now time.Time) (bool, error) {
	blocks, err := e.ActiveBlocks(groupId, userId, now)
	if err != nil {
		return false, err
	}
	return len(blocks) > 0, nil
}
