// Package space 提供条款与空间相关的业务逻辑
// 条款正文在挂到空间时定格为快照，之后条款的编辑和删除不回写快照，
// 历史预约看到的始终是预约当时的条款
package space

import (
	"go.uber.org/zap"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/internal/service/access"
	"kama_reservation_server/pkg/constants"
	"kama_reservation_server/pkg/errorx"
)

// spaceService 空间业务逻辑实现
type spaceService struct {
	repos  *repository.Repositories
	access *access.Evaluator
}

// NewSpaceService 构造函数
func NewSpaceService(repos *repository.Repositories) *spaceService {
	return &spaceService{
		repos:  repos,
		access: access.NewEvaluator(repos),
	}
}

// ==================== 条款 ====================

func toTermRespond(term *model.Term) respond.TermRespond {
	return respond.TermRespond{
		TermId:    term.ID,
		GroupId:   term.GroupId,
		Title:     term.Title,
		Body:      term.Body,
		CreatedAt: term.CreatedAt.Format(constants.DATE_TIME_FORMAT),
	}
}

// CreateTerm 创建条款（仅管理员）
func (s *spaceService) CreateTerm(userId uint, req request.CreateTermRequest) (*respond.TermRespond, error) {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return nil, err
	}
	term := model.Term{
		GroupId: req.GroupId,
		Title:   req.Title,
		Body:    req.Body,
	}
	if err := s.repos.Term.Create(&term); err != nil {
		zap.L().Error("create term error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toTermRespond(&term)
	return &rsp, nil
}

// UpdateTerm 更新条款（仅管理员）
// 既有空间和预约保存的是快照，不受更新影响
func (s *spaceService) UpdateTerm(userId uint, req request.UpdateTermRequest) (*respond.TermRespond, error) {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return nil, err
	}
	term, err := s.repos.Term.FindByIdAndGroup(req.TermId, req.GroupId)
	if err != nil {
		return nil, err
	}
	term.Title = req.Title
	term.Body = req.Body
	if err := s.repos.Term.Update(term); err != nil {
		zap.L().Error("update term error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toTermRespond(term)
	return &rsp, nil
}

// DeleteTerm 删除条款（仅管理员）
// 引用此条款的空间解除引用但保留快照
func (s *spaceService) DeleteTerm(userId uint, req request.DeleteTermRequest) error {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return err
	}
	term, err := s.repos.Term.FindByIdAndGroup(req.TermId, req.GroupId)
	if err != nil {
		return err
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		spaces, err := txRepos.Space.FindByGroupId(req.GroupId)
		if err != nil {
			zap.L().Error("find spaces error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		for i := range spaces {
			sp := &spaces[i]
			if sp.TermId == nil || *sp.TermId != term.ID {
				continue
			}
			sp.TermId = nil // 快照保留
			if err := txRepos.Space.Update(sp); err != nil {
				zap.L().Error("unlink term from space error", zap.Error(err))
				return errorx.ErrServerBusy
			}
		}
		if err := txRepos.Term.Delete(term.ID); err != nil {
			zap.L().Error("delete term error", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
}

// ListTerms 获取群组条款列表（成员可见）
func (s *spaceService) ListTerms(userId, groupId uint) ([]respond.TermRespond, error) {
	if _, err := s.access.RequireMember(groupId, userId); err != nil {
		return nil, err
	}
	terms, err := s.repos.Term.FindByGroupId(groupId)
	if err != nil {
		zap.L().Error("find terms error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.TermRespond, 0, len(terms))
	for i := range terms {
		rsp = append(rsp, toTermRespond(&terms[i]))
	}
	return rsp, nil
}

// ==================== 空间 ====================

// toSpaceRespond 构建空间响应，补充必需标签的内容
func (s *spaceService) toSpaceRespond(space *model.Space) respond.SpaceRespond {
	rsp := respond.SpaceRespond{
		SpaceId:              space.ID,
		GroupId:              space.GroupId,
		Name:                 space.Name,
		TermId:               space.TermId,
		TermBody:             space.TermBody,
		RequiredPermissionId: space.RequiredPermissionId,
	}
	if space.RequiredPermissionId != nil {
		if tag, err := s.repos.Permission.FindTagById(*space.RequiredPermissionId); err == nil {
			rsp.RequiredPermissionBody = tag.Body
		}
	}
	return rsp
}

// resolveTermBody 校验条款属于本群组并返回其正文，挂条款时定格快照用
func (s *spaceService) resolveTermBody(groupId uint, termId *uint) (string, error) {
	if termId == nil {
		return "", nil
	}
	term, err := s.repos.Term.FindByIdAndGroup(*termId, groupId)
	if err != nil {
		return "", err
	}
	return term.Body, nil
}

// checkPermissionTag 校验权限标签属于本群组
func (s *spaceService) checkPermissionTag(groupId uint, tagId *uint) error {
	if tagId == nil {
		return nil
	}
	tag, err := s.repos.Permission.FindTagById(*tagId)
	if err != nil {
		return err
	}
	if tag.GroupId != groupId {
		return errorx.New(errorx.CodeNotFound, "权限标签不存在")
	}
	return nil
}

// CreateSpace 创建空间（仅管理员）
// 挂条款时定格条款正文快照
func (s *spaceService) CreateSpace(userId uint, req request.CreateSpaceRequest) (*respond.SpaceRespond, error) {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return nil, err
	}
	termBody, err := s.resolveTermBody(req.GroupId, req.TermId)
	if err != nil {
		return nil, err
	}
	if err := s.checkPermissionTag(req.GroupId, req.RequiredPermissionId); err != nil {
		return nil, err
	}

	space := model.Space{
		GroupId:              req.GroupId,
		Name:                 req.Name,
		TermId:               req.TermId,
		TermBody:             termBody,
		RequiredPermissionId: req.RequiredPermissionId,
	}
	if err := s.repos.Space.Create(&space); err != nil {
		zap.L().Error("create space error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := s.toSpaceRespond(&space)
	return &rsp, nil
}

// UpdateSpace 更新空间（仅管理员）
// 条款换绑或保持都重新定格快照，解绑则清空快照
func (s *spaceService) UpdateSpace(userId uint, req request.UpdateSpaceRequest) (*respond.SpaceRespond, error) {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return nil, err
	}
	space, err := s.repos.Space.FindByIdAndGroup(req.SpaceId, req.GroupId)
	if err != nil {
		return nil, err
	}
	termBody, err := s.resolveTermBody(req.GroupId, req.TermId)
	if err != nil {
		return nil, err
	}
	if err := s.checkPermissionTag(req.GroupId, req.RequiredPermissionId); err != nil {
		return nil, err
	}

	space.Name = req.Name
	space.TermId = req.TermId
	space.TermBody = termBody
	space.RequiredPermissionId = req.RequiredPermissionId
	if err := s.repos.Space.Update(space); err != nil {
		zap.L().Error("update space error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := s.toSpaceRespond(space)
	return &rsp, nil
}

// DeleteSpace 删除空间（仅管理员）
// 既有预约保存的条款快照不受影响
func (s *spaceService) DeleteSpace(userId uint, req request.DeleteSpaceRequest) error {
	if _, err := s.access.RequireManager(req.GroupId, userId); err != nil {
		return err
	}
	space, err := s.repos.Space.FindByIdAndGroup(req.SpaceId, req.GroupId)
	if err != nil {
		return err
	}
	if err := s.repos.Space.Delete(space.ID); err != nil {
		zap.L().Error("delete space error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// ListSpaces 获取群组空间列表（成员可见）
func (s *spaceService) ListSpaces(userId, groupId uint) ([]respond.SpaceRespond, error) {
	if _, err := s.access.RequireMember(groupId, userId); err != nil {
		return nil, err
	}
	spaces, err := s.repos.Space.FindByGroupId(groupId)
	if err != nil {
		zap.L().Error("find spaces error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.SpaceRespond, 0, len(spaces))
	for i := range spaces {
		rsp = append(rsp, s.toSpaceRespond(&spaces[i]))
	}
	return rsp, nil
}
