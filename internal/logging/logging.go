// Package logging writes timestamped, leveled lines to the console and
// appends the same lines, uncolored, to a log file.
//
// Line format on both sinks:
//
//	[2006-01-02 15:04:05] [LEVEL] message
//
// A missing or unwritable log file degrades to a console warning; it
// never fails the run.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Level is the severity token embedded in every log line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger is a two-sink leveled logger. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File // nil when no file sink is active
	color bool
	now   func() time.Time
}

// New creates a logger writing to out and appending to the file at path.
// An empty path disables the file sink. Colors are enabled only when out
// is a terminal.
func New(out io.Writer, path string) *Logger {
	l := &Logger{
		out:   out,
		color: writerIsTerminal(out),
		now:   time.Now,
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			l.Warnf("log file unavailable, console only: %v", err)
		} else {
			l.file = f
		}
	}
	return l
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Infof logs at INFO level.
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs at WARN level.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs at ERROR level.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] [%s] %s", ts, level, msg)

	console := line
	if l.color {
		console = fmt.Sprintf("[%s] [%s] %s", ts, styleFor(level).Render(string(level)), msg)
	}
	fmt.Fprintln(l.out, console)

	if l.file != nil {
		if _, err := fmt.Fprintln(l.file, line); err != nil {
			// Console-only warning; do not recurse through log.
			warn := fmt.Sprintf("[%s] [%s] log file write failed: %v", ts, LevelWarn, err)
			fmt.Fprintln(l.out, warn)
		}
	}
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
