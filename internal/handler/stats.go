package handler

import (
	"runtime"
	"sync/atomic"
	"time"

	"tg-pingbot/internal/crash"
	"tg-pingbot/internal/logger"
)

var (
	totalMessagesObserved  int64
	totalCommandsProcessed int64
	totalBroadcastsStarted int64
	totalBroadcastErrors   int64
	startTime              = time.Now()
)

func incrementCounter(counter *int64) {
	atomic.AddInt64(counter, 1)
}

// GetProcessingStats returns a snapshot of runtime and processing metrics.
func GetProcessingStats() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(startTime)

	return map[string]interface{}{
		"uptime_seconds":           int64(uptime.Seconds()),
		"total_messages_observed":  atomic.LoadInt64(&totalMessagesObserved),
		"total_commands_processed": atomic.LoadInt64(&totalCommandsProcessed),
		"total_broadcasts_started": atomic.LoadInt64(&totalBroadcastsStarted),
		"total_broadcast_errors":   atomic.LoadInt64(&totalBroadcastErrors),
		"memory_usage_mb":          bToMb(m.Alloc),
		"total_alloc_mb":           bToMb(m.TotalAlloc),
		"sys_memory_mb":            bToMb(m.Sys),
		"gc_runs":                  m.NumGC,
		"goroutines":               runtime.NumGoroutine(),
	}
}

// LogProcessingStats periodically logs processing statistics.
func LogProcessingStats() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		stats := GetProcessingStats()
		logger.Infof("Processing stats: %+v", stats)

		started := stats["total_broadcasts_started"].(int64)
		failed := stats["total_broadcast_errors"].(int64)
		if started > 0 && float64(failed)/float64(started) > 0.5 {
			logger.Warningf("High broadcast failure rate: %d errors out of %d broadcasts", failed, started)
		}
	}
}

// StartStatusMonitoring starts the background stats logger.
func StartStatusMonitoring() {
	crash.SafeGoroutine("status-monitoring", LogProcessingStats)
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
