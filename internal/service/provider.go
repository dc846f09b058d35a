// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"kama_reservation_server/internal/dao/mysql/repository"
	myredis "kama_reservation_server/internal/dao/redis"
	"kama_reservation_server/internal/service/auth"
	"kama_reservation_server/internal/service/group"
	"kama_reservation_server/internal/service/reservation"
	"kama_reservation_server/internal/service/space"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Auth        AuthService        // 认证 Service
	Group       GroupService       // 群组 Service
	Space       SpaceService       // 空间与条款 Service
	Reservation ReservationService // 预约 Service
}

// NewServices 创建并注入所有 Service 实例
// repos: Repository 层聚合实例
// cache: 缓存服务
// notifier: 预约看板通知器，未启用看板时可传 nil
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService,
	notifier reservation.BoardNotifier) *Services {
	return &Services{
		Auth:        auth.NewAuthService(repos, cache),
		Group:       group.NewGroupService(repos, cache),
		Space:       space.NewSpaceService(repos),
		Reservation: reservation.NewReservationService(repos, notifier),
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Group.CreateGroup() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 和 Redis 初始化之后
func InitServices(repos *repository.Repositories, cache myredis.AsyncCacheService,
	notifier reservation.BoardNotifier) {
	Svc = NewServices(repos, cache, notifier)
}
