package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T, provider func() *InitData) (*Hub, string) {
	t.Helper()
	hub := NewHub(zap.NewNop())
	hub.SetInitDataProvider(provider)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn)
		client.Register()
		go client.WritePump()
		client.ReadPump()
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_InitThenBroadcast(t *testing.T) {
	hub, url := startHub(t, func() *InitData {
		return &InitData{Recent: []string{"a"}, Active: map[string]string{}}
	})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	init := readMessage(t, conn)
	assert.Equal(t, MsgTypeInit, init.Type)
	data, ok := init.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"a"}, data["recent"])
	assert.Equal(t, 1, hub.ClientCount())

	hub.BroadcastMessage(MsgTypeRunState, map[string]string{"state": "running"})
	msg := readMessage(t, conn)
	assert.Equal(t, MsgTypeRunState, msg.Type)
	assert.Equal(t, map[string]interface{}{"state": "running"}, msg.Data)
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub, url := startHub(t, func() *InitData { return &InitData{} })

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	readMessage(t, conn)
	require.Equal(t, 1, hub.ClientCount())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// 未运行时队列写满后丢弃，不阻塞
	for i := 0; i < 300; i++ {
		hub.BroadcastMessage(MsgTypeTelemetry, i)
	}
	assert.Zero(t, hub.ClientCount())
}
