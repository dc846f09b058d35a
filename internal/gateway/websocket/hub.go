// Package websocket 实现预约看板的实时推送网关
// 核心职责：WebSocket 连接生命周期管理
// 1. 建立 WebSocket 连接 (Upgrade)
// 2. 按空间维护订阅连接集合，管理读写协程 (Read/Write Loop)
// 3. 实现 reservation.BoardNotifier，把时段变更事件广播给订阅者
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/pkg/constants"
)

// gorilla/websocket 默认拦截跨域握手，前端和后端不同源时会 403
// 放开 Origin 检查，允许任意来源连接
var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// boardConn 表示一条订阅空间看板的 WebSocket 连接
type boardConn struct {
	conn    *websocket.Conn
	userId  uint
	spaceId uint

	mu     sync.Mutex
	closed bool
	send   chan []byte // 待推送给前端的事件
}

// trySend 把事件塞进发送缓冲，连接已关闭或缓冲已满时返回 false
// 与 closeSend 用同一把锁互斥，保证不会向已关闭的通道发送
func (c *boardConn) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// closeSend 关闭发送通道使写循环退出，幂等
func (c *boardConn) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// write 从 send 通道取事件写给前端，通道关闭或写失败即退出
func (c *boardConn) write() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.L().Error("ws write error", zap.Error(err))
			return
		}
	}
}

// read 看板是单向推送，读循环只负责感知断开
func (c *boardConn) read(onClose func()) {
	defer onClose()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Hub 预约看板广播中心
// 以空间为粒度维护订阅连接，预约创建/取消时向对应空间的订阅者推送事件
type Hub struct {
	// spaces: spaceId -> *sync.Map (conn -> *boardConn)
	spaces sync.Map
}

// NewHub 创建广播中心
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe 升级连接并订阅指定空间的看板
// 调用方已完成认证和成员资格校验
func (h *Hub) Subscribe(c *gin.Context, spaceId, userId uint) error {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade error", zap.Error(err))
		return err
	}

	client := &boardConn{
		conn:    conn,
		userId:  userId,
		spaceId: spaceId,
		send:    make(chan []byte, constants.CHANNEL_SIZE),
	}

	subsAny, _ := h.spaces.LoadOrStore(spaceId, &sync.Map{})
	subs := subsAny.(*sync.Map)
	subs.Store(client, struct{}{})

	go client.write()
	go client.read(func() {
		subs.Delete(client)
		client.closeSend()
		_ = conn.Close()
	})

	zap.L().Info("board subscriber connected",
		zap.Uint("space_id", spaceId), zap.Uint("user_id", userId))
	return nil
}

// PublishSlotEvent 向空间的全部订阅者广播时段变更事件
// 实现 reservation.BoardNotifier；慢连接的事件直接丢弃，不阻塞发布方
func (h *Hub) PublishSlotEvent(spaceId uint, event respond.SlotEventRespond) {
	subsAny, ok := h.spaces.Load(spaceId)
	if !ok {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("marshal slot event error", zap.Error(err))
		return
	}

	subs := subsAny.(*sync.Map)
	subs.Range(func(key, _ any) bool {
		client := key.(*boardConn)
		// Range 取到的连接可能刚被读循环关闭，trySend 内部持锁判定
		if !client.trySend(data) {
			zap.L().Warn("board subscriber event dropped",
				zap.Uint("space_id", spaceId), zap.Uint("user_id", client.userId))
		}
		return true
	})
}
