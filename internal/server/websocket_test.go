package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialMonitor(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/monitor"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial monitor: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMonitorReceivesExchanges(t *testing.T) {
	srv := setupTestServer(t, "")
	conn := dialMonitor(t, srv)

	// Wait for the hub to register the client before broadcasting.
	deadline := time.Now().Add(time.Second)
	for srv.hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("monitor client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	srv.hub.BroadcastExchange("quero ser dev", "Tente trilha X")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}

	var ex Exchange
	if err := json.Unmarshal(data, &ex); err != nil {
		t.Fatalf("decode exchange: %v", err)
	}
	if ex.Mensagem != "quero ser dev" || ex.Resposta != "Tente trilha X" {
		t.Errorf("exchange = %+v", ex)
	}
	if ex.ID == "" {
		t.Error("exchange ID should be set")
	}
}

func TestMonitorUnregisterOnClose(t *testing.T) {
	srv := setupTestServer(t, "")
	conn := dialMonitor(t, srv)

	deadline := time.Now().Add(time.Second)
	for srv.hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("monitor client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	conn.Close()

	deadline = time.Now().Add(time.Second)
	for srv.hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("monitor client never unregistered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
