// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
)

// AuthService 认证业务接口
// 处理用户注册、登录、令牌刷新
type AuthService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录，签发双令牌
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 用 Refresh Token 换取新的令牌对
	RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
}

// GroupService 群组业务接口
// 处理群组的创建、信息管理、成员管理、加群申请和活动限制
// 所有方法的 userId 参数为已认证的请求人用户ID
type GroupService interface {
	// CreateGroup 创建群组，创建人成为管理员，自动生成邀请码
	CreateGroup(userId uint, req request.CreateGroupRequest) (*respond.GroupInfoRespond, error)
	// GetGroupInfo 获取群组信息，非成员得到 NotFound
	GetGroupInfo(userId, groupId uint) (*respond.GroupInfoRespond, error)
	// GetMyGroups 获取我管理的和我加入的群组列表
	GetMyGroups(userId uint) (*respond.MyGroupListRespond, error)
	// UpdateGroupInfo 更新群组名称和公开性（仅管理员）
	// 私密转公开时自动接受全部待处理加群申请
	UpdateGroupInfo(userId uint, req request.UpdateGroupInfoRequest) error
	// ReissueInviteCode 更换邀请码（仅管理员），返回新邀请码
	ReissueInviteCode(userId uint, req request.ReissueInviteCodeRequest) (string, error)
	// JoinByInviteCode 凭邀请码加入：公开群组直接入群，私密群组生成申请
	JoinByInviteCode(userId uint, req request.JoinByInviteCodeRequest) (*respond.JoinByInviteCodeRespond, error)
	// ListMembers 获取成员列表及各自的权限标签
	ListMembers(userId, groupId uint) ([]respond.GroupMemberRespond, error)
	// KickMember 移出成员（仅管理员），同时撤销其全部权限标签授予
	KickMember(userId uint, req request.KickMemberRequest) error
	// Withdraw 退出群组，管理员必须先移交管理权
	Withdraw(userId uint, req request.WithdrawRequest) error
	// HandoverManager 移交管理权给另一名成员（仅管理员）
	HandoverManager(userId uint, req request.HandoverManagerRequest) error
	// UpdateMemberPermission 将成员的标签集合调整为目标状态（仅管理员）
	UpdateMemberPermission(userId uint, req request.UpdateMemberPermissionRequest) error
	// ListPermissionTags 获取群组的权限标签列表
	ListPermissionTags(userId, groupId uint) ([]respond.PermissionTagRespond, error)
	// ListJoinRequests 获取待处理加群申请列表（仅管理员）
	ListJoinRequests(userId, groupId uint) ([]respond.JoinRequestRespond, error)
	// AcceptJoinRequest 接受加群申请（仅管理员），重复处理得到 NotFound
	AcceptJoinRequest(userId uint, req request.HandleJoinRequestRequest) error
	// RejectJoinRequest 拒绝加群申请（仅管理员），重复处理得到 NotFound
	RejectJoinRequest(userId uint, req request.HandleJoinRequestRequest) error
	// CreateBlock 创建成员活动限制（仅管理员）
	CreateBlock(userId uint, req request.CreateBlockRequest) (*respond.BlockRespond, error)
	// ListBlocks 获取某成员的限制记录，管理员可查任意成员，成员只能查自己
	ListBlocks(userId, groupId, memberId uint) ([]respond.BlockRespond, error)
	// DeleteBlock 解除限制（仅管理员）
	DeleteBlock(userId uint, req request.DeleteBlockRequest) error
}

// SpaceService 空间与条款业务接口
// 写操作仅管理员可用，读操作对全体成员开放
type SpaceService interface {
	// CreateTerm 创建条款
	CreateTerm(userId uint, req request.CreateTermRequest) (*respond.TermRespond, error)
	// UpdateTerm 更新条款，不回写既有快照
	UpdateTerm(userId uint, req request.UpdateTermRequest) (*respond.TermRespond, error)
	// DeleteTerm 删除条款
	DeleteTerm(userId uint, req request.DeleteTermRequest) error
	// ListTerms 获取群组条款列表
	ListTerms(userId, groupId uint) ([]respond.TermRespond, error)
	// CreateSpace 创建空间，定格所挂条款的正文快照
	CreateSpace(userId uint, req request.CreateSpaceRequest) (*respond.SpaceRespond, error)
	// UpdateSpace 更新空间，换绑条款时重新定格快照
	UpdateSpace(userId uint, req request.UpdateSpaceRequest) (*respond.SpaceRespond, error)
	// DeleteSpace 删除空间
	DeleteSpace(userId uint, req request.DeleteSpaceRequest) error
	// ListSpaces 获取群组空间列表
	ListSpaces(userId, groupId uint) ([]respond.SpaceRespond, error)
}

// ReservationService 预约业务接口
type ReservationService interface {
	// WeekGrid 获取空间的周视图时段网格
	WeekGrid(userId uint, req request.WeekGridRequest) (*respond.WeekGridRespond, error)
	// Book 预约一个时段
	Book(userId uint, req request.BookSlotRequest) (*respond.ReservationRespond, error)
	// GetReservation 获取预约详情
	GetReservation(userId uint, req request.ReservationDetailRequest) (*respond.ReservationRespond, error)
	// DeleteReservation 取消预约，仅预约人本人或管理员
	DeleteReservation(userId uint, req request.DeleteReservationRequest) error
}
