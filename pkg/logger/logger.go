package logger

import "log"

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type stdLogger struct {
	level int
}

// NewLogger returns a logger printing through the stdlib log package. Records
// below level are discarded.
func NewLogger(level int) *stdLogger {
	return &stdLogger{level: level}
}

func (l *stdLogger) printf(level int, tag, msg string, a ...any) {
	if l.level > level {
		return
	}

	log.Printf(tag+msg+"\n", a...)
}

func (l *stdLogger) Debugf(msg string, a ...any) {
	l.printf(DEBUG, "DEBUG: ", msg, a...)
}

func (l *stdLogger) Infof(msg string, a ...any) {
	l.printf(INFO, "INFO: ", msg, a...)
}

func (l *stdLogger) Warnf(msg string, a ...any) {
	l.printf(WARNING, "WARNING: ", msg, a...)
}

func (l *stdLogger) Errorf(msg string, a ...any) {
	l.printf(ERROR, "ERROR: ", msg, a...)
}
