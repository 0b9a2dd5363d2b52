package transport

import (
	"testing"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

func TestDecodeConsoleEvent(t *testing.T) {
	frame := []byte(`{"channel":"console","data":{"level":"warning","message":"low memory","source":"app.js:12"}}`)

	ev, err := DecodeEvent(frame)
	if err != nil {
		t.Fatal(err)
	}

	rec, ok := ev.(model.ConsoleRecord)
	if !ok {
		t.Fatalf("expected ConsoleRecord, got %T", ev)
	}
	if rec.Level != "WARN" {
		t.Errorf("level not normalized: %q", rec.Level)
	}
	if rec.Message != "low memory" || rec.Source != "app.js:12" {
		t.Errorf("payload lost: %+v", rec)
	}
	if rec.Time.IsZero() {
		t.Error("missing timestamp must default to arrival time")
	}
}

func TestDecodeNetworkEvent(t *testing.T) {
	frame := []byte(`{"channel":"network","data":{"id":"req-9","url":"/api/users","method":"POST","status":201,"startAt":"2026-08-27T10:00:00Z"}}`)

	ev, err := DecodeEvent(frame)
	if err != nil {
		t.Fatal(err)
	}

	rec, ok := ev.(model.NetworkRecord)
	if !ok {
		t.Fatalf("expected NetworkRecord, got %T", ev)
	}
	if rec.ID != "req-9" || rec.Status != 201 {
		t.Errorf("payload lost: %+v", rec)
	}
}

func TestDecodeStorageEvent(t *testing.T) {
	frame := []byte(`{"channel":"storage","data":{"type":"cookie","action":"set","entry":{"name":"sid","value":"abc","httpOnly":true}}}`)

	ev, err := DecodeEvent(frame)
	if err != nil {
		t.Fatal(err)
	}

	se, ok := ev.(model.StorageEvent)
	if !ok {
		t.Fatalf("expected StorageEvent, got %T", ev)
	}
	if se.Kind != model.CookieStorage || se.Action != model.StorageSet {
		t.Errorf("wrong kind/action: %+v", se)
	}
	if se.Entry.Name != "sid" || !se.Entry.HTTPOnly {
		t.Errorf("entry lost: %+v", se.Entry)
	}
}

func TestDecodeDatabaseEvent(t *testing.T) {
	frame := []byte(`{"channel":"database","data":{"action":"update","database":"A","store":"S"}}`)

	ev, err := DecodeEvent(frame)
	if err != nil {
		t.Fatal(err)
	}

	de, ok := ev.(model.DatabaseEvent)
	if !ok {
		t.Fatalf("expected DatabaseEvent, got %T", ev)
	}
	if de.Action != model.DatabaseUpdate || de.Database != "A" || de.Store != "S" {
		t.Errorf("payload lost: %+v", de)
	}
}

func TestDecodePageEvent(t *testing.T) {
	frame := []byte(`{"channel":"page","data":{"html":"<p>hi</p>","location":{"href":"https://example.com/app"}}}`)

	ev, err := DecodeEvent(frame)
	if err != nil {
		t.Fatal(err)
	}

	pe, ok := ev.(model.PageEvent)
	if !ok {
		t.Fatalf("expected PageEvent, got %T", ev)
	}
	if pe.HTML != "<p>hi</p>" || pe.Location.Href != "https://example.com/app" {
		t.Errorf("payload lost: %+v", pe)
	}
}

func TestDecodeRejectsUnknownChannel(t *testing.T) {
	if _, err := DecodeEvent([]byte(`{"channel":"telemetry","data":{}}`)); err == nil {
		t.Error("expected error for unknown channel")
	}
	if _, err := DecodeEvent([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed frame")
	}
}
