// Package handler 提供 HTTP 请求处理器
// 本文件处理预约看板的 WebSocket 订阅请求
package handler

import (
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/gateway/websocket"
	"kama_reservation_server/internal/service"
	"kama_reservation_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// WsHandler 预约看板 WebSocket 订阅处理器
// 升级连接前先完成成员资格和空间归属校验
type WsHandler struct {
	hub      *websocket.Hub
	spaceSvc service.SpaceService
}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler(hub *websocket.Hub, spaceSvc service.SpaceService) *WsHandler {
	return &WsHandler{hub: hub, spaceSvc: spaceSvc}
}

// SubscribeBoard 订阅空间预约看板
// GET /ws/board?group_id=xxx&space_id=xxx
// 握手成功后，该空间的预约创建/取消事件会以 respond.SlotEventRespond 推送
func (h *WsHandler) SubscribeBoard(c *gin.Context) {
	var req request.BoardSubscribeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := currentUserId(c)

	// ListSpaces 自带成员资格校验，顺带确认空间归属
	spaces, err := h.spaceSvc.ListSpaces(userId, req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	found := false
	for _, sp := range spaces {
		if sp.SpaceId == req.SpaceId {
			found = true
			break
		}
	}
	if !found {
		HandleError(c, errorx.New(errorx.CodeNotFound, "空间不存在"))
		return
	}

	// Upgrade 之后响应由 WebSocket 协议接管，失败日志在 Hub 内记录
	_ = h.hub.Subscribe(c, req.SpaceId, userId)
}
