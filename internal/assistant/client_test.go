package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat" {
			t.Errorf("request = %s %s, want POST /chat", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["mensagem"] != "quero migrar para dados" {
			t.Errorf("mensagem = %q", body["mensagem"])
		}

		json.NewEncoder(w).Encode(map[string]string{"resposta": "Tente a trilha de dados"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	reply, err := c.Ask(context.Background(), "quero migrar para dados")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != "Tente a trilha de dados" {
		t.Errorf("Ask() = %q, want %q", reply, "Tente a trilha de dados")
	}
}

func TestClientAskNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Ask(context.Background(), "oi"); err == nil {
		t.Error("Ask() error = nil, want non-nil for 502")
	}
}

func TestClientAskMissingResposta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	reply, err := c.Ask(context.Background(), "oi")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != "" {
		t.Errorf("Ask() = %q, want empty", reply)
	}
}

func TestClientAskTransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "")
	if _, err := c.Ask(context.Background(), "oi"); err == nil {
		t.Error("Ask() error = nil, want transport error")
	}
}
