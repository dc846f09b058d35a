// Package handler 提供 HTTP 请求处理器
// 本文件处理条款与空间相关的 API 请求
package handler

import (
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SpaceHandler 空间与条款请求处理器
type SpaceHandler struct {
	spaceSvc service.SpaceService
}

// NewSpaceHandler 创建空间处理器实例
func NewSpaceHandler(spaceSvc service.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaceSvc: spaceSvc}
}

// CreateTerm 创建条款
// POST /space/createTerm
// 请求体: request.CreateTermRequest
// 响应: respond.TermRespond
func (h *SpaceHandler) CreateTerm(c *gin.Context) {
	var req request.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.CreateTerm(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateTerm 更新条款
// POST /space/updateTerm
// 请求体: request.UpdateTermRequest
// 响应: respond.TermRespond
func (h *SpaceHandler) UpdateTerm(c *gin.Context) {
	var req request.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.UpdateTerm(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteTerm 删除条款
// POST /space/deleteTerm
// 请求体: request.DeleteTermRequest
// 响应: nil
func (h *SpaceHandler) DeleteTerm(c *gin.Context) {
	var req request.DeleteTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.spaceSvc.DeleteTerm(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListTerms 获取条款列表
// GET /space/listTerms?group_id=xxx
// 响应: []respond.TermRespond
func (h *SpaceHandler) ListTerms(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.ListTerms(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateSpace 创建空间
// POST /space/createSpace
// 请求体: request.CreateSpaceRequest
// 响应: respond.SpaceRespond
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	var req request.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.CreateSpace(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateSpace 更新空间
// POST /space/updateSpace
// 请求体: request.UpdateSpaceRequest
// 响应: respond.SpaceRespond
func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	var req request.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.UpdateSpace(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSpace 删除空间
// POST /space/deleteSpace
// 请求体: request.DeleteSpaceRequest
// 响应: nil
func (h *SpaceHandler) DeleteSpace(c *gin.Context) {
	var req request.DeleteSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.spaceSvc.DeleteSpace(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListSpaces 获取空间列表
// GET /space/listSpaces?group_id=xxx
// 响应: []respond.SpaceRespond
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.spaceSvc.ListSpaces(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
