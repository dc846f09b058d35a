// Package group 提供群组相关的业务逻辑
// 覆盖群组创建、信息管理、邀请码、成员管理、权限标签、加群申请和活动限制
package group

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"kama_reservation_server/internal/dao/mysql/repository"
	myredis "kama_reservation_server/internal/dao/redis"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/internal/service/access"
	"kama_reservation_server/pkg/constants"
	"kama_reservation_server/pkg/errorx"
	"kama_reservation_server/pkg/util/random"
)

// groupService 群组业务逻辑实现
// 通过构造函数注入 Repository 和 Cache 依赖
type groupService struct {
	repos  *repository.Repositories
	cache  myredis.AsyncCacheService
	access *access.Evaluator
}

// NewGroupService 构造函数，注入所有依赖
func NewGroupService(repos *repository.Repositories, cache myredis.AsyncCacheService) *groupService {
	return &groupService{
		repos:  repos,
		cache:  cache,
		access: access.NewEvaluator(repos),
	}
}

// myGroupsKey 用户群组列表缓存键
func myGroupsKey(userId uint) string {
	return "my_groups_" + strconv.FormatUint(uint64(userId), 10)
}

// membersKey 群组成员列表缓存键
func membersKey(groupId uint) string {
	return "group_members_" + strconv.FormatUint(uint64(groupId), 10)
}

// invalidate 异步删除缓存键
func (g *groupService) invalidate(keys ...string) {
	g.cache.SubmitTask(func() {
		if err := g.cache.DeleteByPatterns(context.Background(), keys); err != nil {
			zap.L().Error("invalidate cache error", zap.Error(err))
		}
	})
}

// CreateGroup 创建群组
// 创建人成为管理员并自动入群；单人最多管理 50 个群组
// 邀请码随机生成，撞唯一索引时重新抽取，名称冲突直接报错
func (g *groupService) CreateGroup(userId uint, req request.CreateGroupRequest) (*respond.GroupInfoRespond, error) {
	managed, err := g.repos.Group.CountByManagerId(userId)
	if err != nil {
		zap.L().Error("count managed groups error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if managed >= constants.MANAGED_GROUP_LIMIT {
		return nil, errorx.Newf(errorx.CodeForbidden, "最多管理 %d 个群组", constants.MANAGED_GROUP_LIMIT)
	}

	group := model.GroupInfo{
		Name:      req.Name,
		ManagerId: userId,
		IsPublic:  req.IsPublic,
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		// 邀请码碰撞时重抽，名称冲突不重试
		for attempt := 0; attempt < constants.INVITE_CODE_MAX_RETRY; attempt++ {
			group.InviteCode = random.InviteCode(constants.INVITE_CODE_LENGTH)
			createErr := txRepos.Group.Create(&group)
			if createErr == nil {
				break
			}
			if !errorx.IsConflict(createErr) {
				zap.L().Error("create group error", zap.Error(createErr))
				return errorx.ErrServerBusy
			}
			// 区分冲突来源：邀请码撞库才值得重试
			if _, codeErr := txRepos.Group.FindByInviteCode(group.InviteCode); errorx.IsNotFound(codeErr) {
				return errorx.New(errorx.CodeConflict, "群组名称已被使用")
			}
			if attempt == constants.INVITE_CODE_MAX_RETRY-1 {
				zap.L().Error("invite code collision retry exhausted")
				return errorx.ErrServerBusy
			}
		}

		member := model.GroupMember{
			GroupId: group.ID,
			UserId:  userId,
		}
		if err := txRepos.Member.Create(&member); err != nil {
			zap.L().Error("create manager membership error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.invalidate(myGroupsKey(userId))

	rsp := g.toGroupRespond(&group, userId)
	return &rsp, nil
}

// toGroupRespond 构建群组响应，邀请码仅对成员可见，调用前已完成成员校验
func (g *groupService) toGroupRespond(group *model.GroupInfo, userId uint) respond.GroupInfoRespond {
	return respond.GroupInfoRespond{
		GroupId:    group.ID,
		Name:       group.Name,
		ManagerId:  group.ManagerId,
		IsPublic:   group.IsPublic,
		InviteCode: group.InviteCode,
		CreatedAt:  group.CreatedAt.Format(constants.DATE_TIME_FORMAT),
		IsManager:  g.access.IsManager(group, userId),
	}
}

// GetGroupInfo 获取群组信息
// 非成员得到 NotFound，与群组不存在不可区分
func (g *groupService) GetGroupInfo(userId, groupId uint) (*respond.GroupInfoRespond, error) {
	group, err := g.access.RequireMember(groupId, userId)
	if err != nil {
		return nil, err
	}
	rsp := g.toGroupRespond(group, userId)
	return &rsp, nil
}

// GetMyGroups 获取我管理的和我加入的群组列表
func (g *groupService) GetMyGroups(userId uint) (*respond.MyGroupListRespond, error) {
	cacheKey := myGroupsKey(userId)

	// 1. 尝试从缓存获取
	cached, err := g.cache.Get(context.Background(), cacheKey)
	if err == nil && cached != "" {
		var rsp respond.MyGroupListRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return &rsp, nil
		}
		zap.L().Error("unmarshal my groups cache error", zap.Error(err))
	} else if err != nil {
		zap.L().Error("redis get error", zap.Error(err))
	}

	// 2. 缓存未命中，查数据库
	rsp := respond.MyGroupListRespond{
		Managed: make([]respond.GroupInfoRespond, 0),
		Joined:  make([]respond.GroupInfoRespond, 0),
	}

	memberships, err := g.repos.Member.FindByUserId(userId)
	if err != nil {
		zap.L().Error("find memberships error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for _, m := range memberships {
		group, err := g.repos.Group.FindById(m.GroupId)
		if err != nil {
			zap.L().Error("find group error", zap.Error(err))
			continue
		}
		item := g.toGroupRespond(group, userId)
		if item.IsManager {
			rsp.Managed = append(rsp.Managed, item)
		} else {
			rsp.Joined = append(rsp.Joined, item)
		}
	}

	// 3. 异步回填缓存
	if data, err := json.Marshal(rsp); err == nil {
		g.cache.SubmitTask(func() {
			if err := g.cache.Set(context.Background(), cacheKey, string(data), time.Hour); err != nil {
				zap.L().Error("set my groups cache error", zap.Error(err))
			}
		})
	}

	return &rsp, nil
}

// UpdateGroupInfo 更新群组名称和公开性（仅管理员）
// 私密转公开时，同一事务内接受全部待处理加群申请
func (g *groupService) UpdateGroupInfo(userId uint, req request.UpdateGroupInfoRequest) error {
	group, err := g.access.RequireManager(req.GroupId, userId)
	if err != nil {
		return err
	}

	wasPrivate := !group.IsPublic
	group.Name = req.Name
	group.IsPublic = req.IsPublic

	var joinedUsers []uint
	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Group.Update(group); err != nil {
			if errorx.IsConflict(err) {
				return errorx.New(errorx.CodeConflict, "群组名称已被使用")
			}
			zap.L().Error("update group error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		// 转为公开后没有"待审核"一说，存量申请全部放行
		if wasPrivate && req.IsPublic {
			requests, err := txRepos.JoinRequest.FindByGroupId(group.ID)
			if err != nil {
				zap.L().Error("find join requests error", zap.Error(err))
				return errorx.ErrServerBusy
			}
			for _, jr := range requests {
				member := model.GroupMember{GroupId: group.ID, UserId: jr.UserId}
				if err := txRepos.Member.Create(&member); err != nil && !errorx.IsConflict(err) {
					zap.L().Error("accept pending join request error", zap.Error(err))
					return errorx.ErrServerBusy
				}
				if err := txRepos.JoinRequest.Delete(jr.ID); err != nil {
					zap.L().Error("delete join request error", zap.Error(err))
					return errorx.ErrServerBusy
				}
				joinedUsers = append(joinedUsers, jr.UserId)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	keys := []string{membersKey(group.ID), myGroupsKey(userId)}
	for _, uid := range joinedUsers {
		keys = append(keys, myGroupsKey(uid))
	}
	g.invalidate(keys...)
	return nil
}

// ReissueInviteCode 更换邀请码（仅管理员）
// 旧邀请码立即作废
func (g *groupService) ReissueInviteCode(userId uint, req request.ReissueInviteCodeRequest) (string, error) {
	group, err := g.access.RequireManager(req.GroupId, userId)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < constants.INVITE_CODE_MAX_RETRY; attempt++ {
		group.InviteCode = random.InviteCode(constants.INVITE_CODE_LENGTH)
		err := g.repos.Group.Update(group)
		if err == nil {
			return group.InviteCode, nil
		}
		if !errorx.IsConflict(err) {
			zap.L().Error("reissue invite code error", zap.Error(err))
			return "", errorx.ErrServerBusy
		}
	}
	zap.L().Error("invite code collision retry exhausted")
	return "", errorx.ErrServerBusy
}

// JoinByInviteCode 凭邀请码加入群组
// 公开群组直接成为成员，私密群组生成待处理申请
func (g *groupService) JoinByInviteCode(userId uint, req request.JoinByInviteCodeRequest) (*respond.JoinByInviteCodeRespond, error) {
	group, err := g.repos.Group.FindByInviteCode(req.InviteCode)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "邀请码无效")
		}
		zap.L().Error("find group by invite code error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if _, err := g.repos.Member.FindByGroupAndUser(group.ID, userId); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "已是该群组成员")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("find membership error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := respond.JoinByInviteCodeRespond{GroupId: group.ID, Name: group.Name}

	if group.IsPublic {
		member := model.GroupMember{GroupId: group.ID, UserId: userId}
		if err := g.repos.Member.Create(&member); err != nil {
			if errorx.IsConflict(err) {
				return nil, errorx.New(errorx.CodeConflict, "已是该群组成员")
			}
			zap.L().Error("create member error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp.Joined = true
		g.invalidate(myGroupsKey(userId), membersKey(group.ID))
		return &rsp, nil
	}

	jr := model.JoinRequest{GroupId: group.ID, UserId: userId}
	if err := g.repos.JoinRequest.Create(&jr); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "已提交过加群申请，请等待处理")
		}
		zap.L().Error("create join request error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp.Joined = false
	return &rsp, nil
}

// ListMembers 获取成员列表及各自的权限标签
func (g *groupService) ListMembers(userId, groupId uint) ([]respond.GroupMemberRespond, error) {
	group, err := g.access.RequireMember(groupId, userId)
	if err != nil {
		return nil, err
	}

	cacheKey := membersKey(groupId)
	cached, err := g.cache.Get(context.Background(), cacheKey)
	if err == nil && cached != "" {
		var rsp []respond.GroupMemberRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
		zap.L().Error("unmarshal members cache error", zap.Error(err))
	} else if err != nil {
		zap.L().Error("redis get error", zap.Error(err))
	}

	members, err := g.repos.Member.FindByGroupId(groupId)
	if err != nil {
		zap.L().Error("find members error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.GroupMemberRespond, 0, len(members))
	for _, m := range members {
		user, err := g.repos.User.FindById(m.UserId)
		if err != nil {
			zap.L().Error("find member user error", zap.Error(err))
			continue
		}
		tags, err := g.repos.Permission.FindTagsOfUser(groupId, m.UserId)
		if err != nil {
			zap.L().Error("find member tags error", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		tagBodies := make([]string, 0, len(tags))
		for _, t := range tags {
			tagBodies = append(tagBodies, t.Body)
		}
		rsp = append(rsp, respond.GroupMemberRespond{
			UserId:    m.UserId,
			Username:  user.Username,
			Nickname:  user.Nickname,
			IsManager: g.access.IsManager(group, m.UserId),
			Tags:      tagBodies,
			JoinedAt:  m.CreatedAt.Format(constants.DATE_TIME_FORMAT),
		})
	}

	if data, err := json.Marshal(rsp); err == nil {
		g.cache.SubmitTask(func() {
			if err := g.cache.Set(context.Background(), cacheKey, string(data), 10*time.Minute); err != nil {
				zap.L().Error("set members cache error", zap.Error(err))
			}
		})
	}
	return rsp, nil
}

// KickMember 移出成员（仅管理员）
// 同一事务内撤销其全部权限标签授予；限制记录保留
func (g *groupService) KickMember(userId uint, req request.KickMemberRequest) error {
	_, err := g.access.RequireManager(req.GroupId, userId)
	if err != nil {
		return err
	}
	if req.UserId == userId {
		return errorx.New(errorx.CodeInvalidParam, "管理员不能移出自己")
	}
	if _, err := g.repos.Member.FindByGroupAndUser(req.GroupId, req.UserId); err != nil {
		return err
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Permission.DeleteGrantsInGroup(req.GroupId, req.UserId); err != nil {
			zap.L().Error("delete grants error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if err := txRepos.Member.Delete(req.GroupId, req.UserId); err != nil {
			zap.L().Error("delete member error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(membersKey(req.GroupId), myGroupsKey(req.UserId))
	return nil
}

// Withdraw 退出群组
// 管理员必须先移交管理权才能退出
func (g *groupService) Withdraw(userId uint, req request.WithdrawRequest) error {
	group, err := g.access.RequireMember(req.GroupId, userId)
	if err != nil {
		return err
	}
	if g.access.IsManager(group, userId) {
		return errorx.New(errorx.CodeForbidden, "管理员退出前须先移交管理权")
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Permission.DeleteGrantsInGroup(req.GroupId, userId); err != nil {
			zap.L().Error("delete grants error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if err := txRepos.Member.Delete(req.GroupId, userId); err != nil {
			zap.L().Error("delete member error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(membersKey(req.GroupId), myGroupsKey(userId))
	return nil
}

// HandoverManager 移交管理权给另一名成员（仅管理员）
// 接任人同样受单人管理群组数上限约束
func (g *groupService) HandoverManager(userId uint, req request.HandoverManagerRequest) error {
	group, err := g.access.RequireManager(req.GroupId, userId)
	if err != nil {
		return err
	}
	if req.UserId == userId {
		return errorx.New(errorx.CodeInvalidParam, "不能移交给自己")
	}
	if _, err := g.repos.Member.FindByGroupAndUser(req.GroupId, req.UserId); err != nil {
		return err
	}

	managed, err := g.repos.Group.CountByManagerId(req.UserId)
	if err != nil {
		zap.L().Error("count managed groups error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if managed >= constants.MANAGED_GROUP_LIMIT {
		return errorx.Newf(errorx.CodeForbidden, "对方已管理 %d 个群组，无法接任", constants.MANAGED_GROUP_LIMIT)
	}

	group.ManagerId = req.UserId
	if err := g.repos.Group.Update(group); err != nil {
		zap.L().Error("handover manager error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	g.invalidate(membersKey(req.GroupId), myGroupsKey(userId), myGroupsKey(req.UserId))
	return nil
}

// UpdateMemberPermission 将成员的标签集合调整为目标状态（仅管理员）
// 目标串为空格分隔的标签内容；缺少的授予、多余的撤销，
// 群内尚不存在的标签自动创建，已有标签复用
func (g *groupService) UpdateMemberPermission(userId uint, req request.UpdateMemberPermissionRequest) error {
	_, err := g.access.RequireManager(req.GroupId, userId)
	if err != nil {
		return err
	}
	if _, err := g.repos.Member.FindByGroupAndUser(req.GroupId, req.UserId); err != nil {
		return err
	}

	// 目标标签集合，去重
	desired := make(map[string]bool)
	for _, body := range strings.Fields(req.Tags) {
		if len([]rune(body)) > 10 {
			return errorx.Newf(errorx.CodeInvalidParam, "标签 %q 过长", body)
		}
		desired[body] = true
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		// 在事务内读当前持有集合，避免与并发更新交错出两边都不是的结果
		held, err := txRepos.Permission.FindTagsOfUser(req.GroupId, req.UserId)
		if err != nil {
			zap.L().Error("find held tags error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		heldByBody := make(map[string]model.PermissionTag, len(held))
		for _, t := range held {
			heldByBody[t.Body] = t
		}

		// 授予缺少的标签
		for body := range desired {
			if _, ok := heldByBody[body]; ok {
				continue
			}
			tag, err := txRepos.Permission.FindTagByGroupAndBody(req.GroupId, body)
			if errorx.IsNotFound(err) {
				tag = &model.PermissionTag{GroupId: req.GroupId, Body: body}
				if err := txRepos.Permission.CreateTag(tag); err != nil {
					zap.L().Error("create tag error", zap.Error(err))
					return errorx.ErrServerBusy
				}
			} else if err != nil {
				zap.L().Error("find tag error", zap.Error(err))
				return errorx.ErrServerBusy
			}
			grant := model.PermissionGrant{TagId: tag.ID, UserId: req.UserId, GroupId: req.GroupId}
			if err := txRepos.Permission.CreateGrant(&grant); err != nil && !errorx.IsConflict(err) {
				zap.L().Error("create grant error", zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		// 撤销多余的标签
		for body, tag := range heldByBody {
			if desired[body] {
				continue
			}
			if err := txRepos.Permission.DeleteGrant(tag.ID, req.UserId); err != nil {
				zap.L().Error("delete grant error", zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(membersKey(req.GroupId))
	return nil
}

// ListPermissionTags 获取群组的权限标签列表
func (g *groupService) ListPermissionTags(userId, groupId uint) ([]respond.PermissionTagRespond, error) {
	if _, err := g.access.RequireMember(groupId, userId); err != nil {
		return nil, err
	}
	tags, err := g.repos.Permission.FindTagsByGroupId(groupId)
	if err != nil {
		zap.L().Error("find tags error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.PermissionTagRespond, 0, len(tags))
	for _, t := range tags {
		rsp = append(rsp, respond.PermissionTagRespond{TagId: t.ID, Body: t.Body})
	}
	return rsp, nil
}

// ListJoinRequests 获取待处理加群申请列表（仅管理员）
func (g *groupService) ListJoinRequests(userId, groupId uint) ([]respond.JoinRequestRespond, error) {
	if _, err := g.access.RequireManager(groupId, userId); err != nil {
		return nil, err
	}
	requests, err := g.repos.JoinRequest.FindByGroupId(groupId)
	if err != nil {
		zap.L().Error("find join requests error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.JoinRequestRespond, 0, len(requests))
	for _, jr := range requests {
		item := respond.JoinRequestRespond{
			RequestId: jr.ID,
			UserId:    jr.UserId,
			CreatedAt: jr.CreatedAt.Format(constants.DATE_TIME_FORMAT),
		}
		if user, err := g.repos.User.FindById(jr.UserId); err == nil {
			item.Username = user.Username
			item.Nickname = user.Nickname
		}
		rsp = append(rsp, item)
	}
	return rsp, nil
}

// AcceptJoinRequest 接受加群申请（仅管理员）
// 申请行删除即终态，重复处理同一申请得到 NotFound
func (g *groupService) AcceptJoinRequest(userId uint, req request.HandleJoinRequestRequest) error {
	if _, err := g.access.RequireManager(req.GroupId, userId); err != nil {
		return err
	}
	jr, err := g.repos.JoinRequest.FindByIdAndGroup(req.RequestId, req.GroupId)
	if err != nil {
		return err
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		member := model.GroupMember{GroupId: req.GroupId, UserId: jr.UserId}
		// 申请人可能已经通过其他途径入群，此时只需消掉申请
		if err := txRepos.Member.Create(&member); err != nil && !errorx.IsConflict(err) {
			zap.L().Error("create member error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if err := txRepos.JoinRequest.Delete(jr.ID); err != nil {
			zap.L().Error("delete join request error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(membersKey(req.GroupId), myGroupsKey(jr.UserId))
	return nil
}

// RejectJoinRequest 拒绝加群申请（仅管理员）
// 与接受一样是终态操作，重复处理得到 NotFound
func (g *groupService) RejectJoinRequest(userId uint, req request.HandleJoinRequestRequest) error {
	if _, err := g.access.RequireManager(req.GroupId, userId); err != nil {
		return err
	}
	jr, err := g.repos.JoinRequest.FindByIdAndGroup(req.RequestId, req.GroupId)
	if err != nil {
		return err
	}
	if err := g.repos.JoinRequest.Delete(jr.ID); err != nil {
		zap.L().Error("delete join request error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// CreateBlock 创建成员活动限制（仅管理员）
// 限制生效期间该成员无法发起预约，既有预约不受影响
func (g *groupService) CreateBlock(userId uint, req request.CreateBlockRequest) (*respond.BlockRespond, error) {
	if _, err := g.access.RequireManager(req.GroupId, userId); err != nil {
		return nil, err
	}
	if _, err := g.repos.Member.FindByGroupAndUser(req.GroupId, req.UserId); err != nil {
		return nil, err
	}

	dtFrom, err := time.ParseInLocation(constants.DATE_TIME_FORMAT, req.DtFrom, time.Local)
	if err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "限制开始时间格式错误")
	}
	dtTo, err := time.ParseInLocation(constants.DATE_TIME_FORMAT, req.DtTo, time.Local)
	if err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "限制解除时间格式错误")
	}
	if !dtFrom.Before(dtTo) {
		return nil, errorx.New(errorx.CodeInvalidParam, "限制开始时间必须早于解除时间")
	}

	block := model.Block{
		GroupId: req.GroupId,
		UserId:  req.UserId,
		DtFrom:  dtFrom,
		DtTo:    dtTo,
	}
	if err := g.repos.Block.Create(&block); err != nil {
		zap.L().Error("create block error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.BlockRespond{
		BlockId: block.ID,
		GroupId: block.GroupId,
		UserId:  block.UserId,
		DtFrom:  block.DtFrom.Format(constants.DATE_TIME_FORMAT),
		DtTo:    block.DtTo.Format(constants.DATE_TIME_FORMAT),
		Active:  block.IsActiveAt(time.Now()),
	}, nil
}

// ListBlocks 获取某成员的限制记录
// 管理员可查任意成员，普通成员只能查自己的
func (g *groupService) ListBlocks(userId, groupId, memberId uint) ([]respond.BlockRespond, error) {
	group, err := g.access.RequireMember(groupId, userId)
	if err != nil {
		return nil, err
	}
	if memberId != userId && !g.access.IsManager(group, userId) {
		return nil, errorx.New(errorx.CodeForbidden, "只能查看自己的限制记录")
	}

	blocks, err := g.repos.Block.FindByGroupAndUser(groupId, memberId)
	if err != nil {
		zap.L().Error("find blocks error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	now := time.Now()
	rsp := make([]respond.BlockRespond, 0, len(blocks))
	for _, b := range blocks {
		rsp = append(rsp, respond.BlockRespond{
			BlockId: b.ID,
			GroupId: b.GroupId,
			UserId:  b.UserId,
			DtFrom:  b.DtFrom.Format(constants.DATE_TIME_FORMAT),
			DtTo:    b.DtTo.Format(constants.DATE_TIME_FORMAT),
			Active:  b.IsActiveAt(now),
		})
	}
	return rsp, nil
}

// DeleteBlock 解除限制（仅管理员）
func (g *groupService) DeleteBlock(userId uint, req request.DeleteBlockRequest) error {
	if _, err := g.access.RequireManager(req.GroupId, userId); err != nil {
		return err
	}
	block, err := g.repos.Block.FindById(req.BlockId)
	if err != nil {
		return err
	}
	// 跨群组的 block_id 一律按不存在处理
	if block.GroupId != req.GroupId {
		return errorx.New(errorx.CodeNotFound, "限制记录不存在")
	}
	if err := g.repos.Block.Delete(block.ID); err != nil {
		zap.L().Error("delete block error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
