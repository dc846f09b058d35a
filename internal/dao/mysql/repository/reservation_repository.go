// Package repository 提供数据访问层的具体实现
// 本文件实现 ReservationRepository 接口，处理预约相关的数据库操作
package repository

import (
	"time"

	"kama_reservation_server/internal/model"

	"gorm.io/gorm"
)

// reservationRepository ReservationRepository 接口的实现
type reservationRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewReservationRepository 创建 ReservationRepository 实例
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// FindByIdAndSpace 在空间范围内根据主键查找预约
func (r *reservationRepository) FindByIdAndSpace(id, spaceId uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.Where("id = ? AND space_id = ?", id, spaceId).First(&reservation).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询预约 id=%d space_id=%d", id, spaceId)
	}
	return &reservation, nil
}

// FindInRange 查找空间内 [from, to] 区间的全部预约
// 周视图取一周（周一 00:00:00 ~ 周日 23:59:59）的数据
func (r *reservationRepository) FindInRange(spaceId uint, from, to time.Time) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.Where("space_id = ? AND dt_from >= ? AND dt_to <= ?", spaceId, from, to).
		Order("dt_from").Find(&reservations).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询预约区间 space_id=%d", spaceId)
	}
	return reservations, nil
}

// ExistsInSlot 判断以 target 起始的一小时时段是否已被占用
// 窗口为 dt_from >= target && dt_to < target+1h
// 预约行的 dt_to = dt_from + 59分钟，恰好落在此窗口内
func (r *reservationRepository) ExistsInSlot(spaceId uint, target time.Time) (bool, error) {
	var total int64
	if err := r.db.Model(&model.Reservation{}).
		Where("space_id = ? AND dt_from >= ? AND dt_to < ?", spaceId, target, target.Add(time.Hour)).
		Count(&total).Error; err != nil {
		return false, wrapDBErrorf(err, "查询时段占用 space_id=%d", spaceId)
	}
	return total > 0, nil
}

// Create 创建预约
// 并发抢同一时段时由 (space_id, dt_from) 唯一索引裁决，失败方得到 Conflict
func (r *reservationRepository) Create(reservation *model.Reservation) error {
	if err := r.db.Create(reservation).Error; err != nil {
		return wrapDBError(err, "创建预约")
	}
	return nil
}

// Delete 删除预约（硬删除，时段立即可被重新预约）
func (r *reservationRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Reservation{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除预约 id=%d", id)
	}
	return nil
}
