package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func captureLogger(t *testing.T, level Level) (*Logger, func() []string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "log.jsonl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	l := New(level, f)
	lines := func() []string {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		trimmed := strings.TrimSpace(string(data))
		if trimmed == "" {
			return nil
		}
		return strings.Split(trimmed, "\n")
	}
	return l, lines
}

func TestLoggerWritesStructuredJSON(t *testing.T) {
	l, lines := captureLogger(t, LevelInfo)

	l.Info("Standings scraped", Fields{"year": 2026, "teams": 362})

	got := lines()
	if len(got) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(got))
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(got[0]), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %q", entry.Level)
	}
	if entry.Message != "Standings scraped" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.Fields["year"] != float64(2026) {
		t.Errorf("expected year field 2026, got %v", entry.Fields["year"])
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, lines := captureLogger(t, LevelWarn)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, os.ErrNotExist)

	got := lines()
	if len(got) != 2 {
		t.Fatalf("expected 2 log lines at WARN level, got %d", len(got))
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(got[1]), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Error == "" {
		t.Error("expected error field to be populated")
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("analysis.pools_simulated")
	m.IncrCounter("analysis.pools_simulated")
	m.IncrCounter("scrape.requests")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)
	if counters["analysis.pools_simulated"] != 2 {
		t.Errorf("expected counter 2, got %d", counters["analysis.pools_simulated"])
	}
	if counters["scrape.requests"] != 1 {
		t.Errorf("expected counter 1, got %d", counters["scrape.requests"])
	}
}

func TestMetricsGaugesAndTimings(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("field.size", 64)
	m.RecordTiming("scrape.standings", 100*time.Millisecond)
	m.RecordTiming("scrape.standings", 300*time.Millisecond)

	snapshot := m.GetSnapshot()

	gauges := snapshot["gauges"].(map[string]float64)
	if gauges["field.size"] != 64 {
		t.Errorf("expected gauge 64, got %f", gauges["field.size"])
	}

	timings := snapshot["timings"].(map[string]map[string]interface{})
	stats, ok := timings["scrape.standings"]
	if !ok {
		t.Fatal("expected timing stats for scrape.standings")
	}
	if stats["count"] != 2 {
		t.Errorf("expected count 2, got %v", stats["count"])
	}
	if stats["min"] != "100ms" {
		t.Errorf("expected min 100ms, got %v", stats["min"])
	}
	if stats["max"] != "300ms" {
		t.Errorf("expected max 300ms, got %v", stats["max"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("expected average 200ms, got %v", stats["average"])
	}
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.IncrCounter("concurrent")
				m.RecordTiming("concurrent", time.Millisecond)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	counters := m.GetSnapshot()["counters"].(map[string]int64)
	if counters["concurrent"] != 400 {
		t.Errorf("expected counter 400, got %d", counters["concurrent"])
	}
}
