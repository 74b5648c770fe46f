package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsPublishedEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("invoice.recorded", map[string]any{"po_number": "PO-000001"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "invoice.recorded", msg.Type)
	assert.Equal(t, "PO-000001", msg.Data["po_number"])
}

func TestPublishWithoutRunnerDoesNotBlock(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish("request.submitted", i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked with a full queue")
	}
}

func TestHubShutdownReleasesConnections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	served := make(chan struct{}, 2)
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c)
		served <- struct{}{}
	})
	srv := httptest.NewServer(router)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	before, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer before.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-hub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Connected before shutdown: the server closes it and the read pump exits.
	require.NoError(t, before.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = before.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)

	// Connecting after shutdown: the handler returns instead of blocking on register.
	after, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer after.Close()
	require.NoError(t, after.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = after.ReadMessage()
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseGoingAway, closeErr.Code)

	for i := 0; i < 2; i++ {
		select {
		case <-served:
		case <-time.After(2 * time.Second):
			t.Fatal("ws handler still blocked after hub shutdown")
		}
	}
	assert.Zero(t, hub.ClientCount())
}
