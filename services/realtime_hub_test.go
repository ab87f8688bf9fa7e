package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// dialTestClient upgrades one connection through a test server and returns
// the server-side client plus the peer end for reading frames.
func dialTestClient(t *testing.T, userID uint) (*WSClient, *websocket.Conn) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = peer.Close() })

	select {
	case conn := <-connCh:
		return NewWSClient(userID, conn), peer
	case <-time.After(2 * time.Second):
		t.Fatal("server side of the connection never arrived")
		return nil, nil
	}
}

func TestRealtimeHubBroadcastDelivers(t *testing.T) {
	hub := NewRealtimeHub()
	client, peer := dialTestClient(t, 1)
	hub.Register(client)
	defer hub.Unregister(client)

	summary := &models.DailySummary{UserID: 1, TotalCalories: 299.5}
	hub.BroadcastSummary(1, summary)

	require.NoError(t, peer.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := peer.ReadMessage()
	require.NoError(t, err)

	var msg summaryMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "daily_summary", msg.Type)
	assert.Equal(t, 299.5, msg.Summary.TotalCalories)
}

func TestRealtimeHubBroadcastSkipsOtherUsers(t *testing.T) {
	hub := NewRealtimeHub()
	client, peer := dialTestClient(t, 2)
	hub.Register(client)
	defer hub.Unregister(client)

	hub.BroadcastSummary(1, &models.DailySummary{UserID: 1})

	require.NoError(t, peer.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := peer.ReadMessage()
	assert.Error(t, err, "user 2 must not receive user 1's summary")
}

// Pings and broadcasts run on different goroutines; both must serialize on
// the connection's single permitted writer.
func TestRealtimeHubConcurrentPingAndBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	client, peer := dialTestClient(t, 1)
	hub.Register(client)

	// drain the peer so writes never stall on a full buffer
	go func() {
		for {
			if _, _, err := peer.ReadMessage(); err != nil {
				return
			}
		}
	}()

	summary := &models.DailySummary{UserID: 1}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.BroadcastSummary(1, summary)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			assert.NoError(t, client.Ping())
		}
	}()
	wg.Wait()

	hub.Unregister(client)
}
