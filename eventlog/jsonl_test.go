package eventlog

import (
	"strings"
	"testing"
)

func TestRecorderAssignsRunID(t *testing.T) {
	r1 := NewRecorder()
	r2 := NewRecorder()
	if r1.RunID() == "" {
		t.Fatal("recorder should assign a run ID")
	}
	if r1.RunID() == r2.RunID() {
		t.Error("run IDs should be unique")
	}
}

func TestRecorderOrdersEvents(t *testing.T) {
	rec := NewRecorder()
	rec.Record("expand", map[string]interface{}{"operators": 3})
	rec.Record("net", nil)

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Stage != "expand" || events[1].Stage != "net" {
		t.Errorf("stage order = %q, %q", events[0].Stage, events[1].Stage)
	}
	if events[0].RunID != rec.RunID() {
		t.Error("events should carry the recorder's run ID")
	}
	if events[0].Attributes["operators"] != 3 {
		t.Errorf("attributes lost: %v", events[0].Attributes)
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	rec := NewRecorder()
	rec.Record("expand", map[string]interface{}{"operators": float64(3)})
	rec.Record("encode", nil)

	var sb strings.Builder
	if err := WriteJSONL(&sb, rec.Events()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := strings.Count(sb.String(), "\n"); got != 2 {
		t.Errorf("expected one line per event, got %d lines", got)
	}

	events, err := ReadJSONL(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Stage != "expand" || events[0].RunID != rec.RunID() {
		t.Errorf("event content lost: %+v", events[0])
	}
	if events[0].Attributes["operators"] != float64(3) {
		t.Errorf("attributes lost: %v", events[0].Attributes)
	}
}

func TestReadJSONLSkipsBlankLines(t *testing.T) {
	doc := `{"run_id":"r","stage":"expand","timestamp":"2025-01-01T00:00:00Z"}

{"run_id":"r","stage":"net","timestamp":"2025-01-01T00:00:01Z"}
`
	events, err := ReadJSONL(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("events = %d, want 2", len(events))
	}
}

func TestReadJSONLRejectsMalformedLine(t *testing.T) {
	if _, err := ReadJSONL(strings.NewReader("not json\n")); err == nil {
		t.Error("expected error for malformed line")
	}
}
