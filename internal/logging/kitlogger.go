package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deploykit/kitlog/internal/ui"
)

// DefaultPrefix labels lines from loggers built without an explicit prefix.
const DefaultPrefix = "[DeployKit]"

// EndLine is the type of the Endl marker.
type EndLine struct{}

// Endl completes the current line when passed to Append.
var Endl = EndLine{}

// KitLogger accumulates appended values into a single line and emits it
// when closed. A KitLogger is not safe for concurrent use; build one per
// goroutine or scope.
type KitLogger struct {
	line    strings.Builder
	prefix  string
	verbose bool
	out     io.Writer
	style   ui.Formatter
	closed  bool
}

// New returns an enabled logger with the default prefix.
func New() *KitLogger {
	return NewKitLoggerWithPrefix(true, DefaultPrefix)
}

// NewKitLogger returns a logger with the default prefix.
func NewKitLogger(verbose bool) *KitLogger {
	return NewKitLoggerWithPrefix(verbose, DefaultPrefix)
}

// NewKitLoggerWithPrefix returns a logger that labels every emitted line
// with prefix. An empty prefix emits bare lines.
func NewKitLoggerWithPrefix(verbose bool, prefix string) *KitLogger {
	return &KitLogger{
		prefix:  prefix,
		verbose: verbose,
		style:   ui.Prefix,
	}
}

// SetOutput redirects emitted lines to w. A nil w restores stdout.
func (l *KitLogger) SetOutput(w io.Writer) *KitLogger {
	l.out = w
	return l
}

// SetPrefixStyle changes how the prefix is rendered.
func (l *KitLogger) SetPrefixStyle(f ui.Formatter) *KitLogger {
	l.style = f
	return l
}

// Append adds the textual form of val to the current line. Passing Endl
// emits the current line instead. Disabled or closed loggers ignore it.
func (l *KitLogger) Append(val any) *KitLogger {
	if !l.verbose || l.closed {
		return l
	}
	if _, ok := val.(EndLine); ok {
		_ = l.emit()
		return l
	}
	fmt.Fprint(&l.line, val)
	return l
}

// Appendf adds a formatted value to the current line.
func (l *KitLogger) Appendf(format string, args ...any) *KitLogger {
	if !l.verbose || l.closed {
		return l
	}
	fmt.Fprintf(&l.line, format, args...)
	return l
}

// Close emits the pending line, if any. Only the first call has an effect.
func (l *KitLogger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if !l.verbose {
		return nil
	}
	return l.emit()
}

// String returns the pending line without its prefix.
func (l *KitLogger) String() string {
	return l.line.String()
}

// Len returns the length in bytes of the pending line.
func (l *KitLogger) Len() int {
	return l.line.Len()
}

// Verbose reports whether the logger records appends.
func (l *KitLogger) Verbose() bool {
	return l.verbose
}

// Prefix returns the label the logger puts in front of emitted lines.
func (l *KitLogger) Prefix() string {
	return l.prefix
}

func (l *KitLogger) emit() error {
	if l.line.Len() == 0 {
		return nil
	}

	var b strings.Builder
	if l.prefix != "" {
		b.WriteString(l.style.Sprint(l.prefix))
		b.WriteByte(' ')
	}
	b.WriteString(l.line.String())
	b.WriteByte('\n')
	l.line.Reset()

	out := l.out
	if out == nil {
		out = os.Stdout
	}
	_, err := io.WriteString(out, b.String())
	return err
}
