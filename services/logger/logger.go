package logger

import "log"

// Level định nghĩa các mức độ log
type Level int

const (
	InfoLevel Level = iota
	ErrorLevel
)

// Logger là interface logging cho các background job
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger implement Logger bằng log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}
