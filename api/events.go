package api

import (
	"encoding/json"
	"sync"
	"time"

	"assetbook/middleware"
	"assetbook/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 事件类型
const (
	EventConnected = "connected"
	EventTabs      = "tabs"
	EventData      = "data"
	EventLoaded    = "loaded"
)

const (
	eventBuffer       = 16
	heartbeatInterval = 30 * time.Second
)

// Event 推送给前端的数据变更通知
type Event struct {
	Type string   `json:"type"`
	Tab  string   `json:"tab,omitempty"`
	Tabs []string `json:"tabs,omitempty"`
}

// EventHub 把 Store 的变更通知转发给所有 SSE 连接
type EventHub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
	log  logrus.FieldLogger

	// 启动加载完成时的标签页，发给之后连接的客户端
	loaded []string
	ready  bool
}

var _ store.Observer = (*EventHub)(nil)

// NewEventHub 创建事件中心
func NewEventHub(logger logrus.FieldLogger) *EventHub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EventHub{subs: make(map[int]chan Event), log: logger}
}

// TabsChanged 实现 store.Observer
func (h *EventHub) TabsChanged() {
	h.publish(Event{Type: EventTabs})
}

// DataChanged 实现 store.Observer
func (h *EventHub) DataChanged(tab string) {
	h.publish(Event{Type: EventData, Tab: tab})
}

// Loaded 实现 store.Observer
func (h *EventHub) Loaded(tabs []store.Tab) {
	names := make([]string, len(tabs))
	for i, t := range tabs {
		names[i] = t.Name
	}
	h.mu.Lock()
	h.loaded, h.ready = names, true
	h.mu.Unlock()
	h.publish(Event{Type: EventLoaded, Tabs: names})
}

func (h *EventHub) loadedEvent() (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready {
		return Event{}, false
	}
	return Event{Type: EventLoaded, Tabs: append([]string(nil), h.loaded...)}, true
}

// Subscribers 当前连接数
func (h *EventHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *EventHub) subscribe() (<-chan Event, func()) {
	ch := make(chan Event, eventBuffer)
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// publish 不阻塞：连接处理不过来时丢弃
func (h *EventHub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.log.WithFields(logrus.Fields{"subscriber": id, "type": ev.Type}).Warn("이벤트 버퍼가 가득 차 알림을 버립니다")
		}
	}
}

func writeSSEJSON(c *gin.Context, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = c.Writer.WriteString("data: " + string(b) + "\n\n")
	c.Writer.Flush()
}

// Stream 数据变更事件流
// @Summary 변경 이벤트 스트림
// @Description 탭/자산 변경을 SSE 로 전달합니다. 프레임: data: {"type":"tabs|data|loaded","tab":"..."}. EventSource 는 헤더를 보낼 수 없으므로 token 쿼리로 인증할 수 있습니다
// @Tags 이벤트
// @Produce text/event-stream
// @Security BearerAuth
// @Param token query string false "세션 토큰"
// @Success 200 {string} string "SSE 스트림"
// @Router /api/v1/events [get]
func (h *EventHub) Stream(c *gin.Context) {
	events, unsubscribe := h.subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	writeSSEJSON(c, Event{Type: EventConnected})
	if ev, ok := h.loadedEvent(); ok {
		writeSSEJSON(c, ev)
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	locked := middleware.SessionLocked(c)
	for {
		select {
		case <-ctx.Done():
			return
		case <-locked:
			return
		case ev := <-events:
			writeSSEJSON(c, ev)
		case <-heartbeat.C:
			_, _ = c.Writer.WriteString(": ping\n\n")
			c.Writer.Flush()
		}
	}
}
