// Package diag holds the structured logger and error classification used
// by the batch layer. The decoder and the geometry core never log.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a level name to a Level. Unknown names give Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Event is one log line.
type Event struct {
	Level string            `json:"level"`
	TS    string            `json:"ts"`
	Comp  string            `json:"comp"`
	Stage string            `json:"stage"` // start|finish|error|trace|warn
	Code  Code              `json:"code,omitempty"`
	DurMS int64             `json:"dur_ms,omitempty"`
	Count int64             `json:"count,omitempty"`
	File  string            `json:"file,omitempty"`
	Msg   string            `json:"msg"`
	KV    map[string]string `json:"kv,omitempty"`
}

// Logger writes one JSON object per line. It is safe for concurrent use.
type Logger struct {
	level Level
	mu    sync.Mutex
	w     io.Writer
}

// NewLogger logs to w at the given level. A nil w means stderr.
func NewLogger(w io.Writer, level string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: ParseLevel(level), w: w}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{level: Error + 1, w: io.Discard}
}

// Enabled reports whether events at lv are written.
func (l *Logger) Enabled(lv Level) bool {
	return l != nil && lv >= l.level
}

func (l *Logger) log(lv Level, ev Event) {
	if !l.Enabled(lv) {
		return
	}
	ev.Level = lv.String()
	ev.TS = NowUTC()
	b, _ := json.Marshal(ev)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "logger write error: %v\n", err)
	}
}

// Start records a start event and returns a timer for the finish event.
func (l *Logger) Start(comp, file, msg string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", File: file, Msg: msg})
	return &Timer{l: l, comp: comp, file: file, t0: time.Now()}
}

// Warn records a non-fatal problem, such as a conversion warning.
func (l *Logger) Warn(comp, file, msg string) {
	l.log(Warn, Event{Comp: comp, Stage: "warn", File: file, Msg: msg})
}

// Error records a failure with its classification code.
func (l *Logger) Error(comp, file string, err error, since *time.Time) {
	var dur int64
	if since != nil {
		dur = time.Since(*since).Milliseconds()
	}
	l.log(Error, Event{Comp: comp, Stage: "error", Code: Classify(err), DurMS: dur, File: file, Msg: err.Error()})
}

// Tracer returns a printf-style callback that logs at debug level. It
// returns nil when debug is off so callers skip formatting entirely.
func (l *Logger) Tracer(comp, file string) func(format string, args ...any) {
	if !l.Enabled(Debug) {
		return nil
	}
	return func(format string, args ...any) {
		l.log(Debug, Event{Comp: comp, Stage: "trace", File: file, Msg: fmt.Sprintf(format, args...)})
	}
}

// Timer measures a start to finish span.
type Timer struct {
	l    *Logger
	comp string
	file string
	t0   time.Time
}

// Since returns the start time, for Error's duration.
func (t *Timer) Since() *time.Time {
	if t == nil {
		return nil
	}
	return &t.t0
}

// Finish records the finish event with an optional count and key values.
func (t *Timer) Finish(msg string, count int64, kv map[string]string) {
	if t == nil || t.l == nil {
		return
	}
	t.l.log(Info, Event{Comp: t.comp, Stage: "finish", DurMS: time.Since(t.t0).Milliseconds(), Count: count, File: t.file, Msg: msg, KV: kv})
}

// NowUTC returns the current time as RFC3339 UTC.
func NowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
