package api

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"assetbook/config"
	"assetbook/middleware"
	"assetbook/models"
	"assetbook/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, br *bufio.Reader) Event {
	t.Helper()
	for {
		line, err := br.ReadString('\n')
		require.NoError(t, err)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(strings.TrimPrefix(line, "data: "))), &ev))
		return ev
	}
}

func TestEventHub_Stream(t *testing.T) {
	hub := NewEventHub(nullLogger())
	r := gin.New()
	r.GET("/events", hub.Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	br := bufio.NewReader(resp.Body)
	assert.Equal(t, Event{Type: EventConnected}, readEvent(t, br))
	assert.Equal(t, 1, hub.Subscribers())

	hub.DataChanged("예금")
	assert.Equal(t, Event{Type: EventData, Tab: "예금"}, readEvent(t, br))

	hub.TabsChanged()
	assert.Equal(t, Event{Type: EventTabs}, readEvent(t, br))

	hub.Loaded([]store.Tab{{Name: "A"}, {Name: "B"}})
	assert.Equal(t, Event{Type: EventLoaded, Tabs: []string{"A", "B"}}, readEvent(t, br))

	cancel()
	assert.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestEventHub_StoreNotifications(t *testing.T) {
	hub := NewEventHub(nullLogger())
	s := newTestStore(t, store.WithObserver(hub))
	events, unsubscribe := hub.subscribe()
	defer unsubscribe()

	require.NoError(t, s.AddTab("A"))
	ev := <-events
	assert.Equal(t, EventTabs, ev.Type)

	_, err := s.AddRecord("A", models.AssetInput{Category: "현금", Name: "x"})
	require.NoError(t, err)
	ev = <-events
	assert.Equal(t, Event{Type: EventData, Tab: "A"}, ev)
}

func TestEventHub_PublishDoesNotBlock(t *testing.T) {
	hub := NewEventHub(nullLogger())
	_, unsubscribe := hub.subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < eventBuffer*2; i++ {
			hub.DataChanged("A")
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func openStream(t *testing.T, url string) (*bufio.Reader, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	t.Cleanup(func() { resp.Body.Close() })
	return bufio.NewReader(resp.Body), cancel
}

func TestEventHub_LoadedReachesClientsConnectedLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"예금": [], "현금": []}`), 0o600))

	hub := NewEventHub(nullLogger())
	store.New(path, store.WithLogger(nullLogger()), store.WithObserver(hub))

	r := gin.New()
	r.GET("/events", hub.Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	br, cancel := openStream(t, srv.URL+"/events")
	defer cancel()
	assert.Equal(t, Event{Type: EventConnected}, readEvent(t, br))
	assert.Equal(t, Event{Type: EventLoaded, Tabs: []string{"예금", "현금"}}, readEvent(t, br))
}

func TestEventHub_StreamEndsOnLock(t *testing.T) {
	fingerprint := "hash"
	middleware.InitJWT(&config.Config{}, func() string { return fingerprint }, func() time.Duration { return time.Minute })
	token, err := middleware.GenerateToken()
	require.NoError(t, err)

	hub := NewEventHub(nullLogger())
	r := gin.New()
	r.GET("/events", middleware.StreamAuth(), hub.Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	br, cancel := openStream(t, srv.URL+"/events?token="+token)
	defer cancel()
	assert.Equal(t, Event{Type: EventConnected}, readEvent(t, br))

	middleware.LockSessions()
	_, err = io.ReadAll(br)
	assert.NoError(t, err, "stream is closed by the server")
	assert.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}
