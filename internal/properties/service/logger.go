package service

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	"github.com/welhome/properties-api/internal/api/http/middleware"
)

var infoEnabled atomic.Bool

func init() {
	infoEnabled.Store(true)
}

// SetLogLevel applies LOG_LEVEL. "warn" and "error" silence [info] lines;
// errors are always logged.
func SetLogLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warn", "warning", "error":
		infoEnabled.Store(false)
	default:
		infoEnabled.Store(true)
	}
}

// Logger tags service log lines with the request ID set by the middleware.
type Logger struct {
	requestID string
}

func NewLogger(ctx context.Context) *Logger {
	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) LogError(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	if !infoEnabled.Load() {
		return
	}
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
