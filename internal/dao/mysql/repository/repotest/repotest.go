// Package repotest 提供 Repository 接口的内存实现，供 Service 层测试使用
// 与 MySQL 实现保持同样的错误语义：
//   - 未找到返回 CodeNotFound
//   - 唯一索引冲突返回 CodeConflict
//
// 所有写操作持锁，并发预约测试依赖这一点来模拟数据库唯一索引的裁决
package repotest

import (
	"sort"
	"sync"
	"time"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/errorx"
)

// Store 内存数据仓库，聚合全部实体表
type Store struct {
	mu     sync.Mutex
	nextId uint

	users        map[uint]*model.UserInfo
	groups       map[uint]*model.GroupInfo
	members      map[uint]*model.GroupMember
	tags         map[uint]*model.PermissionTag
	grants       map[uint]*model.PermissionGrant
	blocks       map[uint]*model.Block
	joinRequests map[uint]*model.JoinRequest
	terms        map[uint]*model.Term
	spaces       map[uint]*model.Space
	reservations map[uint]*model.Reservation
}

// NewStore 创建空的内存仓库
func NewStore() *Store {
	return &Store{
		nextId:       1,
		users:        make(map[uint]*model.UserInfo),
		groups:       make(map[uint]*model.GroupInfo),
		members:      make(map[uint]*model.GroupMember),
		tags:         make(map[uint]*model.PermissionTag),
		grants:       make(map[uint]*model.PermissionGrant),
		blocks:       make(map[uint]*model.Block),
		joinRequests: make(map[uint]*model.JoinRequest),
		terms:        make(map[uint]*model.Term),
		spaces:       make(map[uint]*model.Space),
		reservations: make(map[uint]*model.Reservation),
	}
}

// NewRepositories 把内存仓库组装成 Service 层可用的 Repositories 聚合
// db 字段为空，Transaction 会直接执行传入函数
func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		User:        &userRepo{s: s},
		Group:       &groupRepo{s: s},
		Member:      &memberRepo{s: s},
		Permission:  &permissionRepo{s: s},
		Block:       &blockRepo{s: s},
		JoinRequest: &joinRequestRepo{s: s},
		Term:        &termRepo{s: s},
		Space:       &spaceRepo{s: s},
		Reservation: &reservationRepo{s: s},
	}
}

func (s *Store) allocId() uint {
	id := s.nextId
	s.nextId++
	return id
}

func notFound(what string) error {
	return errorx.Newf(errorx.CodeNotFound, "%s不存在", what)
}

func conflict(what string) error {
	return errorx.Newf(errorx.CodeConflict, "%s已存在", what)
}

// ==================== UserRepository ====================

type userRepo struct{ s *Store }

func (r *userRepo) FindById(id uint) (*model.UserInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, notFound("用户")
}

func (r *userRepo) FindByUsername(username string) (*model.UserInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, notFound("用户")
}

func (r *userRepo) Create(user *model.UserInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return conflict("用户名")
		}
	}
	// 模拟 GORM BeforeSave Hook：明文密码入库前加密
	if user.RawPassword != "" {
		if err := user.BeforeSave(nil); err != nil {
			return errorx.Wrap(err, errorx.CodeDBError, "密码加密失败")
		}
	}
	user.ID = r.s.allocId()
	user.CreatedAt = time.Now()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *userRepo) Update(user *model.UserInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return notFound("用户")
	}
	if user.RawPassword != "" {
		if err := user.BeforeSave(nil); err != nil {
			return errorx.Wrap(err, errorx.CodeDBError, "密码加密失败")
		}
	}
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

// ==================== GroupRepository ====================

type groupRepo struct{ s *Store }

func (r *groupRepo) FindById(id uint) (*model.GroupInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.groups[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, notFound("群组")
}

func (r *groupRepo) FindByInviteCode(code string) (*model.GroupInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.groups {
		if g.InviteCode == code {
			copied := *g
			return &copied, nil
		}
	}
	return nil, notFound("群组")
}

func (r *groupRepo) FindByManagerId(managerId uint) ([]model.GroupInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.GroupInfo
	for _, g := range r.s.groups {
		if g.ManagerId == managerId {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *groupRepo) CountByManagerId(managerId uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total int64
	for _, g := range r.s.groups {
		if g.ManagerId == managerId {
			total++
		}
	}
	return total, nil
}

func (r *groupRepo) Create(group *model.GroupInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.groups {
		if g.Name == group.Name {
			return conflict("群组名称")
		}
		if g.InviteCode == group.InviteCode {
			return conflict("邀请码")
		}
	}
	group.ID = r.s.allocId()
	group.CreatedAt = time.Now()
	copied := *group
	r.s.groups[group.ID] = &copied
	return nil
}

func (r *groupRepo) Update(group *model.GroupInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.groups[group.ID]; !ok {
		return notFound("群组")
	}
	for _, g := range r.s.groups {
		if g.ID == group.ID {
			continue
		}
		if g.Name == group.Name {
			return conflict("群组名称")
		}
		if g.InviteCode == group.InviteCode {
			return conflict("邀请码")
		}
	}
	copied := *group
	r.s.groups[group.ID] = &copied
	return nil
}

// ==================== GroupMemberRepository ====================

type memberRepo struct{ s *Store }

func (r *memberRepo) FindByGroupAndUser(groupId, userId uint) (*model.GroupMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		if m.GroupId == groupId && m.UserId == userId {
			copied := *m
			return &copied, nil
		}
	}
	return nil, notFound("成员关系")
}

func (r *memberRepo) FindByGroupId(groupId uint) ([]model.GroupMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.GroupMember
	for _, m := range r.s.members {
		if m.GroupId == groupId {
			result = append(result, *m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memberRepo) FindByUserId(userId uint) ([]model.GroupMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.GroupMember
	for _, m := range r.s.members {
		if m.UserId == userId {
			result = append(result, *m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memberRepo) Create(member *model.GroupMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		if m.GroupId == member.GroupId && m.UserId == member.UserId {
			return conflict("成员关系")
		}
	}
	member.ID = r.s.allocId()
	member.CreatedAt = time.Now()
	copied := *member
	r.s.members[member.ID] = &copied
	return nil
}

func (r *memberRepo) Delete(groupId, userId uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.members {
		if m.GroupId == groupId && m.UserId == userId {
			delete(r.s.members, id)
			return nil
		}
	}
	return nil
}

// ==================== PermissionRepository ====================

type permissionRepo struct{ s *Store }

func (r *permissionRepo) FindTagById(id uint) (*model.PermissionTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.tags[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, notFound("权限标签")
}

func (r *permissionRepo) FindTagsByGroupId(groupId uint) ([]model.PermissionTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.PermissionTag
	for _, t := range r.s.tags {
		if t.GroupId == groupId {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *permissionRepo) FindTagByGroupAndBody(groupId uint, body string) (*model.PermissionTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tags {
		if t.GroupId == groupId && t.Body == body {
			copied := *t
			return &copied, nil
		}
	}
	return nil, notFound("权限标签")
}

func (r *permissionRepo) CreateTag(tag *model.PermissionTag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tags {
		if t.GroupId == tag.GroupId && t.Body == tag.Body {
			return conflict("权限标签")
		}
	}
	tag.ID = r.s.allocId()
	tag.CreatedAt = time.Now()
	copied := *tag
	r.s.tags[tag.ID] = &copied
	return nil
}

func (r *permissionRepo) FindTagsOfUser(groupId, userId uint) ([]model.PermissionTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.PermissionTag
	for _, g := range r.s.grants {
		if g.GroupId != groupId || g.UserId != userId {
			continue
		}
		if t, ok := r.s.tags[g.TagId]; ok {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *permissionRepo) HasGrant(tagId, userId uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.grants {
		if g.TagId == tagId && g.UserId == userId {
			return true, nil
		}
	}
	return false, nil
}

func (r *permissionRepo) CreateGrant(grant *model.PermissionGrant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.grants {
		if g.TagId == grant.TagId && g.UserId == grant.UserId {
			return conflict("标签授予")
		}
	}
	grant.ID = r.s.allocId()
	grant.CreatedAt = time.Now()
	copied := *grant
	r.s.grants[grant.ID] = &copied
	return nil
}

func (r *permissionRepo) DeleteGrant(tagId, userId uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, g := range r.s.grants {
		if g.TagId == tagId && g.UserId == userId {
			delete(r.s.grants, id)
			return nil
		}
	}
	return nil
}

func (r *permissionRepo) DeleteGrantsInGroup(groupId, userId uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, g := range r.s.grants {
		if g.GroupId == groupId && g.UserId == userId {
			delete(r.s.grants, id)
		}
	}
	return nil
}

// ==================== BlockRepository ====================

type blockRepo struct{ s *Store }

func (r *blockRepo) FindById(id uint) (*model.Block, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.blocks[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, notFound("限制记录")
}

func (r *blockRepo) FindByGroupAndUser(groupId, userId uint) ([]model.Block, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.Block
	for _, b := range r.s.blocks {
		if b.GroupId == groupId && b.UserId == userId {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DtFrom.Before(result[j].DtFrom) })
	return result, nil
}

func (r *blockRepo) FindActive(groupId, userId uint, now time.Time) ([]model.Block, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.Block
	for _, b := range r.s.blocks {
		if b.GroupId == groupId && b.UserId == userId && b.IsActiveAt(now) {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *blockRepo) Create(block *model.Block) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	block.ID = r.s.allocId()
	block.CreatedAt = time.Now()
	copied := *block
	r.s.blocks[block.ID] = &copied
	return nil
}

func (r *blockRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.blocks, id)
	return nil
}

// ==================== JoinRequestRepository ====================

type joinRequestRepo struct{ s *Store }

func (r *joinRequestRepo) FindByIdAndGroup(id, groupId uint) (*model.JoinRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if req, ok := r.s.joinRequests[id]; ok && req.GroupId == groupId {
		copied := *req
		return &copied, nil
	}
	return nil, notFound("加群申请")
}

func (r *joinRequestRepo) FindByGroupId(groupId uint) ([]model.JoinRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.JoinRequest
	for _, req := range r.s.joinRequests {
		if req.GroupId == groupId {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *joinRequestRepo) Create(request *model.JoinRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.joinRequests {
		if req.GroupId == request.GroupId && req.UserId == request.UserId {
			return conflict("加群申请")
		}
	}
	request.ID = r.s.allocId()
	request.CreatedAt = time.Now()
	copied := *request
	r.s.joinRequests[request.ID] = &copied
	return nil
}

func (r *joinRequestRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.joinRequests, id)
	return nil
}

// ==================== TermRepository ====================

type termRepo struct{ s *Store }

func (r *termRepo) FindByIdAndGroup(id, groupId uint) (*model.Term, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.terms[id]; ok && t.GroupId == groupId {
		copied := *t
		return &copied, nil
	}
	return nil, notFound("条款")
}

func (r *termRepo) FindByGroupId(groupId uint) ([]model.Term, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.Term
	for _, t := range r.s.terms {
		if t.GroupId == groupId {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *termRepo) Create(term *model.Term) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	term.ID = r.s.allocId()
	term.CreatedAt = time.Now()
	copied := *term
	r.s.terms[term.ID] = &copied
	return nil
}

func (r *termRepo) Update(term *model.Term) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.terms[term.ID]; !ok {
		return notFound("条款")
	}
	copied := *term
	r.s.terms[term.ID] = &copied
	return nil
}

func (r *termRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.terms, id)
	return nil
}

// ==================== SpaceRepository ====================

type spaceRepo struct{ s *Store }

func (r *spaceRepo) FindByIdAndGroup(id, groupId uint) (*model.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sp, ok := r.s.spaces[id]; ok && sp.GroupId == groupId {
		copied := *sp
		return &copied, nil
	}
	return nil, notFound("空间")
}

func (r *spaceRepo) FindByGroupId(groupId uint) ([]model.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.Space
	for _, sp := range r.s.spaces {
		if sp.GroupId == groupId {
			result = append(result, *sp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *spaceRepo) Create(space *model.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	space.ID = r.s.allocId()
	space.CreatedAt = time.Now()
	copied := *space
	r.s.spaces[space.ID] = &copied
	return nil
}

func (r *spaceRepo) Update(space *model.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.spaces[space.ID]; !ok {
		return notFound("空间")
	}
	copied := *space
	r.s.spaces[space.ID] = &copied
	return nil
}

func (r *spaceRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.spaces, id)
	return nil
}

// ==================== ReservationRepository ====================

type reservationRepo struct{ s *Store }

func (r *reservationRepo) FindByIdAndSpace(id, spaceId uint) (*model.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if res, ok := r.s.reservations[id]; ok && res.SpaceId == spaceId {
		copied := *res
		return &copied, nil
	}
	return nil, notFound("预约")
}

func (r *reservationRepo) FindInRange(spaceId uint, from, to time.Time) ([]model.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []model.Reservation
	for _, res := range r.s.reservations {
		if res.SpaceId == spaceId && !res.DtFrom.Before(from) && !res.DtTo.After(to) {
			result = append(result, *res)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DtFrom.Before(result[j].DtFrom) })
	return result, nil
}

func (r *reservationRepo) ExistsInSlot(spaceId uint, target time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.occupied(spaceId, target), nil
}

// occupied 调用方必须持锁
func (r *reservationRepo) occupied(spaceId uint, target time.Time) bool {
	end := target.Add(time.Hour)
	for _, res := range r.s.reservations {
		if res.SpaceId == spaceId && !res.DtFrom.Before(target) && res.DtTo.Before(end) {
			return true
		}
	}
	return false
}

// Create 插入预约，在锁内做 (space_id, dt_from) 唯一校验
// 并发抢同一时段时保证至多一个调用成功，与数据库唯一索引行为一致
func (r *reservationRepo) Create(reservation *model.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, res := range r.s.reservations {
		if res.SpaceId == reservation.SpaceId && res.DtFrom.Equal(reservation.DtFrom) {
			return conflict("时段预约")
		}
	}
	reservation.ID = r.s.allocId()
	reservation.CreatedAt = time.Now()
	copied := *reservation
	r.s.reservations[reservation.ID] = &copied
	return nil
}

func (r *reservationRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.reservations, id)
	return nil
}
