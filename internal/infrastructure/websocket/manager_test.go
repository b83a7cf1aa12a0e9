package websocket

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

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/service"
)

func TestHandleMessage(t *testing.T) {
	c := &Client{ID: "c1", Send: make(chan []byte, 1)}

	var reply WSMessage
	require.NoError(t, json.Unmarshal(c.handleMessage([]byte(`{"type":"ping"}`)), &reply))
	assert.Equal(t, MessageTypePong, reply.Type)

	require.NoError(t, json.Unmarshal(c.handleMessage([]byte(`{"type":"subscribe","data":{"productIds":["p1"]}}`)), &reply))
	assert.Equal(t, MessageTypeSubscribed, reply.Type)
	assert.True(t, c.wants("p1"))
	assert.False(t, c.wants("p2"))

	require.NoError(t, json.Unmarshal(c.handleMessage([]byte(`not json`)), &reply))
	assert.Equal(t, MessageTypeError, reply.Type)
}

func TestManager_BroadcastsPriceUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient("test", conn)
		m.Register <- client
		go client.WritePump()
		client.ReadPump(m)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.PublishPriceUpdate(service.PriceUpdate{
		ProductID:    "p1",
		ItemName:     "Onion",
		Status:       entity.ProductApproved,
		PricePerUnit: 42,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string              `json:"type"`
		Data service.PriceUpdate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, MessageTypePriceUpdate, msg.Type)
	assert.Equal(t, "p1", msg.Data.ProductID)
	assert.Equal(t, 42.0, msg.Data.PricePerUnit)
}

func TestManager_DroppedClientPingDoesNotPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	readDone := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient("slow", conn)
		if !m.Add(client) {
			return
		}
		// No WritePump: the client never drains its queue.
		go func() {
			defer close(readDone)
			client.ReadPump(m)
		}()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	for i := 0; i <= sendBuffer; i++ {
		m.PublishPriceUpdate(service.PriceUpdate{ProductID: "p1", PricePerUnit: float64(i)})
	}
	require.Eventually(t, func() bool { return m.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))

	select {
	case <-readDone:
	case <-time.After(2 * time.Second):
		t.Fatal("read loop did not exit after the client was dropped")
	}
}

func TestManager_ShutdownStopsClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	m := NewManager()
	m.Start(ctx)

	client := NewClient("c1", nil)
	require.True(t, m.Add(client))
	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("client was not stopped on shutdown")
	}
	assert.False(t, m.Add(NewClient("late", nil)))
}
