package logger

import (
	"log"
	"os"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// SimpleLogger implements Logger with basic Go logging
type SimpleLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewSimpleLogger creates a new simple logger
func NewSimpleLogger() Logger {
	return &SimpleLogger{
		out: log.New(os.Stdout, "", log.Ldate|log.Ltime|log.Lshortfile),
		err: log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

func (l *SimpleLogger) log(dst *log.Logger, level, msg string, fields []interface{}) {
	if len(fields) > 0 {
		dst.Printf("%s: %s %v", level, msg, fields)
	} else {
		dst.Printf("%s: %s", level, msg)
	}
}

// Info logs an info message
func (l *SimpleLogger) Info(msg string, fields ...interface{}) {
	l.log(l.out, "INFO", msg, fields)
}

// Error logs an error message
func (l *SimpleLogger) Error(msg string, err error, fields ...interface{}) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	l.log(l.err, "ERROR", msg, fields)
}

// Warn logs a warning message
func (l *SimpleLogger) Warn(msg string, fields ...interface{}) {
	l.log(l.out, "WARN", msg, fields)
}

// Debug logs a debug message
func (l *SimpleLogger) Debug(msg string, fields ...interface{}) {
	l.log(l.out, "DEBUG", msg, fields)
}

// Fatal logs a fatal error and exits
func (l *SimpleLogger) Fatal(msg string, err error, fields ...interface{}) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	if len(fields) > 0 {
		l.err.Fatalf("FATAL: %s %v", msg, fields)
	} else {
		l.err.Fatalf("FATAL: %s", msg)
	}
}
