package store

import (
	"sync"
	"time"
)

// OpLog represents a single store mutation log entry
type OpLog struct {
	ID        int           `json:"id"`
	Op        string        `json:"op"`
	Detail    string        `json:"detail"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// OpLogger stores executed store operations for debugging
type OpLogger struct {
	mu      sync.RWMutex
	ops     []OpLog
	maxLogs int
	counter int
}

// Global operation logger instance
var Ops = NewOpLogger(100)

// NewOpLogger creates a new operation logger
func NewOpLogger(maxLogs int) *OpLogger {
	return &OpLogger{
		ops:     make([]OpLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// Log records a store operation
func (ol *OpLogger) Log(op, detail string, duration time.Duration, err error) {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	ol.counter++
	entry := OpLog{
		ID:        ol.counter,
		Op:        op,
		Detail:    detail,
		Duration:  duration,
		Timestamp: time.Now(),
	}

	if err != nil {
		entry.Error = err.Error()
	}

	// Latest first
	ol.ops = append([]OpLog{entry}, ol.ops...)

	if len(ol.ops) > ol.maxLogs {
		ol.ops = ol.ops[:ol.maxLogs]
	}
}

// GetOps returns all logged operations
func (ol *OpLogger) GetOps() []OpLog {
	ol.mu.RLock()
	defer ol.mu.RUnlock()

	result := make([]OpLog, len(ol.ops))
	copy(result, ol.ops)
	return result
}

// Clear removes all logged operations
func (ol *OpLogger) Clear() {
	ol.mu.Lock()
	defer ol.mu.Unlock()
	ol.ops = ol.ops[:0]
}

// GetRecentOps returns the most recent n operations
func (ol *OpLogger) GetRecentOps(n int) []OpLog {
	ol.mu.RLock()
	defer ol.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(ol.ops) {
		n = len(ol.ops)
	}
	result := make([]OpLog, n)
	copy(result, ol.ops[:n])
	return result
}
