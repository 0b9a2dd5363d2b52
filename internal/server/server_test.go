package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yixuqiu/page-spy-web/internal/model"
	"github.com/yixuqiu/page-spy-web/internal/store"
)

type stubSender struct{ sent []model.ControlMessage }

func (s *stubSender) Active() bool { return true }
func (s *stubSender) SendToTarget(msg model.ControlMessage) error {
	s.sent = append(s.sent, msg)
	return nil
}

func newTestServer(t *testing.T) (*Server, *store.Store, *stubSender) {
	t.Helper()
	sender := &stubSender{}
	st := store.New(store.Options{Sender: sender})
	t.Cleanup(st.Close)
	return New(st, "0"), st, sender
}

func get(t *testing.T, srv *Server, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.engine.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("invalid JSON from %s: %v", path, err)
		}
	}
	return w.Code
}

func post(t *testing.T, srv *Server, path string) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	srv.engine.ServeHTTP(w, req)
	return w.Code
}

func TestConsoleEndpoint(t *testing.T) {
	srv, st, _ := newTestServer(t)

	st.Apply(model.ConsoleRecord{Level: "INFO", Message: "hello"})

	var records []model.ConsoleRecord
	if code := get(t, srv, "/api/console", &records); code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	if len(records) != 1 || records[0].Message != "hello" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestNetworkEndpointSorted(t *testing.T) {
	srv, st, _ := newTestServer(t)

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	st.Apply(model.NetworkRecord{ID: "b", StartAt: base.Add(time.Second)})
	st.Apply(model.NetworkRecord{ID: "a", StartAt: base})

	var records []model.NetworkRecord
	get(t, srv, "/api/network", &records)
	if len(records) != 2 || records[0].ID != "a" {
		t.Errorf("expected chronological order, got %+v", records)
	}
}

func TestStorageEndpoint(t *testing.T) {
	srv, st, _ := newTestServer(t)

	st.Apply(model.StorageEvent{
		Kind: model.LocalStorage, Action: model.StorageGet,
		Entries: []model.StorageEntry{{Name: "x", Value: "1"}},
	})

	var areas map[model.StorageKind][]model.StorageEntry
	get(t, srv, "/api/storage", &areas)
	if len(areas[model.LocalStorage]) != 1 {
		t.Errorf("unexpected storage payload: %+v", areas)
	}
}

func TestPageEndpointBeforeFirstCommit(t *testing.T) {
	srv, _, _ := newTestServer(t)

	if code := get(t, srv, "/api/page", nil); code != http.StatusOK {
		t.Errorf("page endpoint must answer before the first snapshot, got %d", code)
	}
}

func TestClearEndpoint(t *testing.T) {
	srv, st, _ := newTestServer(t)

	st.Apply(model.ConsoleRecord{Message: "a"})

	if code := post(t, srv, "/api/clear/console"); code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	if len(st.Console()) != 0 {
		t.Error("console not cleared")
	}

	// Channels outside the clearable set are rejected.
	if code := post(t, srv, "/api/clear/system"); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unclearable channel, got %d", code)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	srv, _, sender := newTestServer(t)

	if code := post(t, srv, "/api/refresh/network"); code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	if len(sender.sent) != 1 || sender.sent[0].Data != "network" {
		t.Errorf("refresh not forwarded to target: %+v", sender.sent)
	}

	if code := post(t, srv, "/api/refresh/bogus"); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown channel, got %d", code)
	}
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var body map[string]any
	if code := get(t, srv, "/healthz", &body); code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected health body: %+v", body)
	}
}
