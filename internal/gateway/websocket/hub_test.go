package websocket

import (
	"sync"
	"testing"

	"kama_reservation_server/internal/dto/respond"
)

func newTestClient(spaceId uint) *boardConn {
	return &boardConn{
		userId:  1,
		spaceId: spaceId,
		send:    make(chan []byte, 1),
	}
}

func TestTrySendAfterClose(t *testing.T) {
	client := newTestClient(1)

	client.closeSend()
	if client.trySend([]byte("x")) {
		t.Fatal("trySend after close should report dropped")
	}
	// 重复关闭不应 panic
	client.closeSend()
}

func TestTrySendBufferFull(t *testing.T) {
	client := newTestClient(1)

	if !client.trySend([]byte("a")) {
		t.Fatal("first send should fit the buffer")
	}
	if client.trySend([]byte("b")) {
		t.Fatal("second send should be dropped, buffer size 1")
	}
}

// 断开连接和广播并发进行时不能向已关闭的通道发送
func TestPublishConcurrentWithDisconnect(t *testing.T) {
	h := NewHub()
	event := respond.SlotEventRespond{Action: "booked", SpaceId: 1, ReservationId: 1}

	for i := 0; i < 50; i++ {
		client := newTestClient(1)
		subs := &sync.Map{}
		subs.Store(client, struct{}{})
		h.spaces.Store(uint(1), subs)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				h.PublishSlotEvent(1, event)
			}
		}()
		go func() {
			defer wg.Done()
			// 读循环断开时的清理顺序
			subs.Delete(client)
			client.closeSend()
		}()
		wg.Wait()
	}
}
