// Package auth 提供认证相关的业务逻辑
// 处理注册、登录和令牌刷新，采用双令牌方案：
// Access Token 短期有效用于接口认证，Refresh Token 长期有效用于续签
// Refresh Token 的 tokenID 存入缓存，新登录会使旧的 Refresh Token 失效
package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"kama_reservation_server/internal/dao/mysql/repository"
	myredis "kama_reservation_server/internal/dao/redis"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/constants"
	"kama_reservation_server/pkg/errorx"
	myjwt "kama_reservation_server/pkg/util/jwt"
)

// Service 认证服务实现
type Service struct {
	repos *repository.Repositories
	cache myredis.CacheService // 缓存服务（依赖倒置）
}

// NewAuthService 创建认证服务实例
func NewAuthService(repos *repository.Repositories, cache myredis.CacheService) *Service {
	return &Service{
		repos: repos,
		cache: cache,
	}
}

// tokenKey Refresh Token ID 的缓存键
func tokenKey(userId uint) string {
	return "user_token:" + strconv.FormatUint(uint64(userId), 10)
}

// Register 用户注册
// 用户名已被占用返回 CodeUserExist
func (s *Service) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	user := model.UserInfo{
		Username:    req.Username,
		Nickname:    req.Nickname,
		Email:       req.Email,
		RawPassword: req.Password, // BeforeSave Hook 负责加密
	}
	if err := s.repos.User.Create(&user); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeUserExist, "用户名已被占用")
		}
		zap.L().Error("create user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RegisterRespond{
		UserId:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
	}, nil
}

// Login 密码登录
// 用户不存在和密码错误返回不同的业务码，便于前端提示
func (s *Service) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByUsername(req.Username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("find user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码错误")
	}

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &respond.LoginRespond{
		UserId:       user.ID,
		Username:     user.Username,
		Nickname:     user.Nickname,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt.Format(constants.DATE_TIME_FORMAT),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 用 Refresh Token 换取新的令牌对
// 校验 tokenID 与缓存中记录的一致，旧 Refresh Token 随即作废（轮换）
func (s *Service) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := myjwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "refresh token 无效")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token 无效")
	}

	validTokenID, err := s.cache.Get(context.Background(), tokenKey(claims.UserID))
	if err != nil {
		zap.L().Error("redis get token id error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if validTokenID == "" || validTokenID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token 已失效，请重新登录")
	}

	accessToken, refreshToken, err := s.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueTokens 签发令牌对并把 Refresh Token 的 tokenID 写入缓存
func (s *Service) issueTokens(userId uint) (accessToken, refreshToken string, err error) {
	accessToken, err = myjwt.GenerateAccessToken(userId)
	if err != nil {
		zap.L().Error("generate access token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := myjwt.GenerateRefreshToken(userId)
	if err != nil {
		zap.L().Error("generate refresh token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}

	ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := s.cache.Set(context.Background(), tokenKey(userId), tokenID, ttl); err != nil {
		zap.L().Error(fmt.Sprintf("store token id for user %d error", userId), zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	return accessToken, refreshToken, nil
}
