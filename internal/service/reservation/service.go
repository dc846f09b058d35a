// Package reservation 提供预约相关的业务逻辑
// 预约按一小时时段进行，时段以整点起始，记录区间为 [整点, 整点+59分钟]
// 并发抢同一时段由 (space_id, dt_from) 唯一索引裁决，至多一人成功
package reservation

import (
	"time"

	"go.uber.org/zap"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/internal/service/access"
	"kama_reservation_server/pkg/constants"
	"kama_reservation_server/pkg/errorx"
)

// BoardNotifier 预约看板通知接口
// 预约创建/取消时把事件推给订阅该空间看板的 WebSocket 连接
// 由 gateway/websocket 实现，依赖倒置避免 Service 层绑定传输细节
type BoardNotifier interface {
	PublishSlotEvent(spaceId uint, event respond.SlotEventRespond)
}

// reservationService 预约业务逻辑实现
type reservationService struct {
	repos    *repository.Repositories
	access   *access.Evaluator
	notifier BoardNotifier // 可为 nil，测试或未启用看板时不推送
}

// NewReservationService 构造函数
func NewReservationService(repos *repository.Repositories, notifier BoardNotifier) *reservationService {
	return &reservationService{
		repos:    repos,
		access:   access.NewEvaluator(repos),
		notifier: notifier,
	}
}

// notify 推送时段变更事件
func (s *reservationService) notify(spaceId uint, event respond.SlotEventRespond) {
	if s.notifier != nil {
		s.notifier.PublishSlotEvent(spaceId, event)
	}
}

// requireSpace 成员资格 + 空间归属校验，预约各操作的共同前置
func (s *reservationService) requireSpace(userId, groupId, spaceId uint) (*model.GroupInfo, *model.Space, error) {
	group, err := s.access.RequireMember(groupId, userId)
	if err != nil {
		return nil, nil, err
	}
	space, err := s.repos.Space.FindByIdAndGroup(spaceId, groupId)
	if err != nil {
		return nil, nil, err
	}
	return group, space, nil
}

// nicknameLookup 带缓存的昵称查询闭包，周视图构建时按预约人取昵称
func (s *reservationService) nicknameLookup() func(uint) string {
	cache := make(map[uint]string)
	return func(userId uint) string {
		if name, ok := cache[userId]; ok {
			return name
		}
		name := ""
		if user, err := s.repos.User.FindById(userId); err == nil {
			name = user.Nickname
		}
		cache[userId] = name
		return name
	}
}

// WeekGrid 获取空间的周视图时段网格
// 日期参数缺省时展示当前周，一周从周一起始
func (s *reservationService) WeekGrid(userId uint, req request.WeekGridRequest) (*respond.WeekGridRespond, error) {
	_, space, err := s.requireSpace(userId, req.GroupId, req.SpaceId)
	if err != nil {
		return nil, err
	}

	anchor, err := parseCalendarDate(req.Year, req.Month, req.Day, time.Now())
	if err != nil {
		return nil, err
	}
	monday := weekStart(anchor)
	nextMonday := monday.AddDate(0, 0, 7)

	reservations, err := s.repos.Reservation.FindInRange(space.ID, monday, nextMonday)
	if err != nil {
		zap.L().Error("find reservations error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := respond.WeekGridRespond{
		SpaceId:   space.ID,
		SpaceName: space.Name,
		TermBody:  space.TermBody,
		Monday:    monday.Format(constants.DATE_FORMAT),
		Cells:     buildWeekGrid(monday, reservations, userId, s.nicknameLookup()),
		PrevWeek:  navQuery(req.GroupId, space.ID, monday.AddDate(0, 0, -7)),
		NextWeek:  navQuery(req.GroupId, space.ID, nextMonday),
		ThisWeek:  navQuery(req.GroupId, space.ID, weekStart(time.Now())),
	}
	for wd := 0; wd < 7; wd++ {
		rsp.Days[wd] = monday.AddDate(0, 0, wd).Format(constants.DATE_FORMAT)
	}
	return &rsp, nil
}

// toReservationRespond 构建预约响应
func (s *reservationService) toReservationRespond(r *model.Reservation) respond.ReservationRespond {
	rsp := respond.ReservationRespond{
		ReservationId:    r.ID,
		SpaceId:          r.SpaceId,
		MemberId:         r.MemberId,
		PromisedTermBody: r.PromisedTermBody,
		DtFrom:           r.DtFrom.Format(constants.DATE_TIME_FORMAT),
		DtTo:             r.DtTo.Format(constants.DATE_TIME_FORMAT),
		CreatedAt:        r.CreatedAt.Format(constants.DATE_TIME_FORMAT),
	}
	if user, err := s.repos.User.FindById(r.MemberId); err == nil {
		rsp.MemberNickname = user.Nickname
	}
	return rsp
}

// Book 预约一个时段
// 依次校验成员资格、空间归属、权限标签、活动限制和时段占用，
// 全部通过后落库；并发冲突由唯一索引兜底
func (s *reservationService) Book(userId uint, req request.BookSlotRequest) (*respond.ReservationRespond, error) {
	_, space, err := s.requireSpace(userId, req.GroupId, req.SpaceId)
	if err != nil {
		return nil, err
	}

	anchor, err := parseCalendarDate(req.MondayYear, req.MondayMonth, req.MondayDay, time.Time{})
	if err != nil {
		return nil, err
	}
	if anchor.IsZero() {
		return nil, errorx.New(errorx.CodeInvalidParam, "缺少周一日期参数")
	}
	if req.Wd < 0 || req.Wd > 6 || req.Hour < 0 || req.Hour > 23 {
		return nil, errorx.New(errorx.CodeInvalidParam, "时段参数超出范围")
	}
	target := slotTime(weekStart(anchor), req.Wd, req.Hour)

	ok, err := s.access.HasPermission(space, userId)
	if err != nil {
		zap.L().Error("check permission error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !ok {
		return nil, errorx.New(errorx.CodeForbidden, "缺少预约此空间所需的权限标签")
	}

	blocked, err := s.access.IsBlocked(req.GroupId, userId, time.Now())
	if err != nil {
		zap.L().Error("check blocks error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if blocked {
		return nil, errorx.New(errorx.CodeForbidden, "当前处于活动限制期间，无法预约")
	}

	occupied, err := s.repos.Reservation.ExistsInSlot(space.ID, target)
	if err != nil {
		zap.L().Error("check slot error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if occupied {
		return nil, errorx.New(errorx.CodeConflict, "该时段已被预约")
	}

	reservation := model.Reservation{
		SpaceId:          space.ID,
		MemberId:         userId,
		PromisedTermBody: s.promisedTermBody(space),
		DtFrom:           target,
		DtTo:             target.Add(constants.RESERVATION_SPAN_MINUTES * time.Minute),
	}
	if err := s.repos.Reservation.Create(&reservation); err != nil {
		// 并发下两个请求都可能通过占用预检，唯一索引只放行一个
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "该时段已被预约")
		}
		zap.L().Error("create reservation error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.notify(space.ID, respond.SlotEventRespond{
		Action:        "booked",
		SpaceId:       space.ID,
		ReservationId: reservation.ID,
		MemberId:      userId,
		DtFrom:        reservation.DtFrom.Format(constants.DATE_TIME_FORMAT),
		DtTo:          reservation.DtTo.Format(constants.DATE_TIME_FORMAT),
	})

	rsp := s.toReservationRespond(&reservation)
	return &rsp, nil
}

// promisedTermBody 预约时定格的条款正文
// 取条款当前正文（不是空间创建时的快照），空间未挂条款时为空串；
// 条款恰好被删除时退回空间快照
func (s *reservationService) promisedTermBody(space *model.Space) string {
	if space.TermId == nil {
		return ""
	}
	term, err := s.repos.Term.FindByIdAndGroup(*space.TermId, space.GroupId)
	if err != nil {
		return space.TermBody
	}
	return term.Body
}

// GetReservation 获取预约详情
func (s *reservationService) GetReservation(userId uint, req request.ReservationDetailRequest) (*respond.ReservationRespond, error) {
	_, space, err := s.requireSpace(userId, req.GroupId, req.SpaceId)
	if err != nil {
		return nil, err
	}
	reservation, err := s.repos.Reservation.FindByIdAndSpace(req.ReservationId, space.ID)
	if err != nil {
		return nil, err
	}
	rsp := s.toReservationRespond(reservation)
	return &rsp, nil
}

// DeleteReservation 取消预约
// 仅预约人本人或群组管理员可取消，时段随即释放
func (s *reservationService) DeleteReservation(userId uint, req request.DeleteReservationRequest) error {
	group, space, err := s.requireSpace(userId, req.GroupId, req.SpaceId)
	if err != nil {
		return err
	}
	reservation, err := s.repos.Reservation.FindByIdAndSpace(req.ReservationId, space.ID)
	if err != nil {
		return err
	}
	if reservation.MemberId != userId && !s.access.IsManager(group, userId) {
		return errorx.New(errorx.CodeForbidden, "只能取消自己的预约")
	}
	if err := s.repos.Reservation.Delete(reservation.ID); err != nil {
		zap.L().Error("delete reservation error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	s.notify(space.ID, respond.SlotEventRespond{
		Action:        "cancelled",
		SpaceId:       space.ID,
		ReservationId: reservation.ID,
		MemberId:      reservation.MemberId,
		DtFrom:        reservation.DtFrom.Format(constants.DATE_TIME_FORMAT),
		DtTo:          reservation.DtTo.Format(constants.DATE_TIME_FORMAT),
	})
	return nil
}
