package telemetry

import (
	"testing"
	"time"
)

func TestNewLoggerBuildsConsoleAndJSON(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatalf("console logger: %v", err)
	}
	if _, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"}); err != nil {
		t.Fatalf("json logger: %v", err)
	}
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "not-a-level", Format: "console"})
	if err != nil {
		t.Fatalf("expected a fallback to info level rather than an error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestMetricsRecordersDoNotPanic(t *testing.T) {
	RecordTick(2 * time.Millisecond)
	SetEnemyCount(3)
	SetProjectileCount(7)
	RecordResourceCapDrop("enemy")
	RecordSaveOp("checkpoint", "ok")
	RecordRequest("GET", "/scene", time.Millisecond)
	SetWSConnections(1)

	if Handler() == nil {
		t.Fatal("expected a non-nil metrics handler")
	}
}
