package levelstate

import (
	"fmt"
	"log"
)

// Logger is the leveled sink states report through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NewLogger writes to l, tagging each line with its level. Debug lines are
// dropped unless debug is set.
func NewLogger(l *log.Logger, debug bool) Logger {
	if l == nil {
		l = log.Default()
	}
	return &stdLogger{out: l, debug: debug}
}

type stdLogger struct {
	out   *log.Logger
	debug bool
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	s.write("DEBUG", format, args...)
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.write("INFO", format, args...)
}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.write("ERROR", format, args...)
}

func (s *stdLogger) write(level, format string, args ...any) {
	_ = s.out.Output(3, fmt.Sprintf("%s [level] %s", level, fmt.Sprintf(format, args...)))
}

// NopLogger discards everything.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
