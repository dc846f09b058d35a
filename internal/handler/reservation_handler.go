// Package handler 提供 HTTP 请求处理器
// 本文件处理预约相关的 API 请求
package handler

import (
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationHandler 预约请求处理器
type ReservationHandler struct {
	reservationSvc service.ReservationService
}

// NewReservationHandler 创建预约处理器实例
func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

// WeekGrid 获取空间周视图
// GET /reservation/weekGrid?group_id=xxx&space_id=xxx&year=&month=&day=
// 日期参数缺省时展示当前周
// 响应: respond.WeekGridRespond
func (h *ReservationHandler) WeekGrid(c *gin.Context) {
	var req request.WeekGridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.reservationSvc.WeekGrid(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Book 预约时段
// POST /reservation/book
// 请求体: request.BookSlotRequest
// 响应: respond.ReservationRespond
func (h *ReservationHandler) Book(c *gin.Context) {
	var req request.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.reservationSvc.Book(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetReservation 获取预约详情
// GET /reservation/getReservation?group_id=xxx&space_id=xxx&reservation_id=xxx
// 响应: respond.ReservationRespond
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	var req request.ReservationDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.reservationSvc.GetReservation(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteReservation 取消预约
// POST /reservation/deleteReservation
// 请求体: request.DeleteReservationRequest
// 响应: nil
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	var req request.DeleteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.reservationSvc.DeleteReservation(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
