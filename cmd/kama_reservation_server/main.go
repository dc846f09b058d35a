package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kama_reservation_server/internal/config"
	dao "kama_reservation_server/internal/dao/mysql"
	myredis "kama_reservation_server/internal/dao/redis"
	"kama_reservation_server/internal/gateway/websocket"
	"kama_reservation_server/internal/handler"
	"kama_reservation_server/internal/https_server"
	"kama_reservation_server/internal/infrastructure/logger"
	"kama_reservation_server/internal/service"
	"kama_reservation_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 6. 初始化参数校验器的翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}
	zap.L().Info("翻译器初始化成功")

	// 7. 初始化预约看板 WebSocket Hub
	hub := websocket.NewHub()
	zap.L().Info("看板 Hub 初始化成功")

	// 8. 初始化 Service 层（依赖注入，Hub 作为看板事件通知器）
	service.InitServices(repos, myredis.GetCacheService(), hub)
	zap.L().Info("Service 层初始化成功")

	// 9. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc, hub)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 10. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault")
			return
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit

	zap.L().Info("关闭服务器...")
	zap.L().Info("服务器已关闭")
}
