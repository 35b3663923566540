package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestLoggerEvents(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "info")

	timer := l.Start("batch", "S2_24.03p", "convert")
	l.Warn("batch", "S2_24.03p", "beam 1: self-crossing contour snapped")
	timer.Finish("ok", 2, map[string]string{"out": "S2_24_03p.prssm"})
	l.Error("batch", "B1_10.01", &argo.FormatError{Line: 1, Msg: "bad comment count"}, timer.Since())

	events := decodeLines(t, &buf)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	tests := []struct {
		level, stage, file string
	}{
		{"info", "start", "S2_24.03p"},
		{"warn", "warn", "S2_24.03p"},
		{"info", "finish", "S2_24.03p"},
		{"error", "error", "B1_10.01"},
	}
	for i, tt := range tests {
		ev := events[i]
		if ev.Level != tt.level || ev.Stage != tt.stage || ev.File != tt.file || ev.Comp != "batch" {
			t.Errorf("event %d = %+v", i, ev)
		}
		if ev.TS == "" {
			t.Errorf("event %d has no timestamp", i)
		}
	}
	if events[2].Count != 2 || events[2].KV["out"] != "S2_24_03p.prssm" {
		t.Errorf("finish event = %+v", events[2])
	}
	if events[3].Code != CodeFormat {
		t.Errorf("error code = %q, want format", events[3].Code)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "error")
	l.Start("batch", "", "skipped").Finish("skipped", 0, nil)
	l.Warn("batch", "", "skipped")
	if buf.Len() != 0 {
		t.Errorf("filtered events were written: %q", buf.String())
	}
	if l.Tracer("argo", "x") != nil {
		t.Error("tracer should be nil below debug")
	}

	Nop().Error("batch", "", errors.New("x"), nil)
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "debug")
	trace := l.Tracer("argo", "S2_24.03p")
	if trace == nil {
		t.Fatal("tracer is nil at debug level")
	}
	trace("beam %d: %d contour points", 1, 4)

	events := decodeLines(t, &buf)
	if len(events) != 1 || events[0].Msg != "beam 1: 4 contour points" || events[0].Level != "debug" {
		t.Errorf("events = %+v", events)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"info":    Info,
		"verbose": Info,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"format", &argo.FormatError{Msg: "x"}, CodeFormat},
		{"parse", fmt.Errorf("beam 2: %w", &argo.ParseError{Token: "x"}), CodeFormat},
		{"eof", &argo.EndOfStreamError{Pos: 10, Field: "contour"}, CodeEOF},
		{"degenerate", section.ErrDegenerate, CodeGeometry},
		{"short contour", fmt.Errorf("beam 1: %w", convert.ErrShortContour), CodeGeometry},
		{"validation", &section.ValidationError{}, CodeGeometry},
		{"io", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, CodeIO},
		{"cancel", context.Canceled, CodeCancel},
		{"other", errors.New("other"), CodeUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("%s: Classify = %q, want %q", tt.name, got, tt.want)
		}
	}
}
