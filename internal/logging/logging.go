package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/deploykit/kitlog/internal/ui"
)

type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.emit(os.Stdout, ui.Success, "[info]", msg, args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.emit(os.Stdout, ui.Info, "[debug]", msg, args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	l.emit(os.Stderr, ui.Warning, "[warn]", msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	if l.Debug {
		l.emit(os.Stderr, ui.Error, "[error]", msg, args...)
	}
}

// ErrorfAndReturn logs the message with Errorf and returns it as an error.
// Arguments wrapped with %w stay matchable through errors.Is.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}

func (l Logger) emit(w io.Writer, style ui.Formatter, level, msg string, args ...any) {
	line := NewKitLoggerWithPrefix(true, level).SetPrefixStyle(style).SetOutput(w)
	line.Appendf(msg, args...)
	_ = line.Close()
}
