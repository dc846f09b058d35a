// Package repository 提供 Repository 层聚合与构造
package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db          *gorm.DB              // GORM 数据库实例
	txMu        sync.Mutex            // db 为空时串行化 Transaction 用
	User        UserRepository        // 用户 Repository
	Group       GroupRepository       // 群组 Repository
	Member      GroupMemberRepository // 群组成员 Repository
	Permission  PermissionRepository  // 权限标签 Repository
	Block       BlockRepository       // 活动限制 Repository
	JoinRequest JoinRequestRepository // 加群申请 Repository
	Term        TermRepository        // 条款 Repository
	Space       SpaceRepository       // 空间 Repository
	Reservation ReservationRepository // 预约 Repository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		User:        NewUserRepository(db),
		Group:       NewGroupRepository(db),
		Member:      NewGroupMemberRepository(db),
		Permission:  NewPermissionRepository(db),
		Block:       NewBlockRepository(db),
		JoinRequest: NewJoinRequestRepository(db),
		Term:        NewTermRepository(db),
		Space:       NewSpaceRepository(db),
		Reservation: NewReservationRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	// db 为空时（测试替身场景）没有可开启的事务，
	// 持锁串行执行闭包，保持事务内读写的原子性
	if r.db == nil {
		r.txMu.Lock()
		defer r.txMu.Unlock()
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
