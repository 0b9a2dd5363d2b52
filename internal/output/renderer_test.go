package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	renderer := &JSONRenderer{enc: enc}

	rec := model.ConsoleRecord{
		Time:    time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		Level:   "ERROR",
		Message: "something broke",
		Source:  "app.js:42",
	}

	if err := renderer.Render(rec); err != nil {
		t.Fatal(err)
	}

	// Parse the output JSON.
	var got model.ConsoleRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}

	if got.Level != "ERROR" {
		t.Errorf("expected level ERROR, got %s", got.Level)
	}
	if got.Message != "something broke" {
		t.Errorf("expected message 'something broke', got %q", got.Message)
	}
	if got.Source != "app.js:42" {
		t.Errorf("expected source 'app.js:42', got %q", got.Source)
	}
}

func TestTextRendererIncludesMessageAndTime(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{w: &buf}

	rec := model.ConsoleRecord{
		Time:    time.Date(2026, 8, 27, 12, 30, 5, 0, time.UTC),
		Level:   "WARN",
		Message: "low disk",
	}

	if err := renderer.Render(rec); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "12:30:05") {
		t.Errorf("missing timestamp in %q", out)
	}
	if !strings.Contains(out, "low disk") {
		t.Errorf("missing message in %q", out)
	}
}
