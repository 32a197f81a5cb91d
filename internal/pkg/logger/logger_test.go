package logger

import (
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"
)

func reset() {
	global = nil
	once = sync.Once{}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"production defaults", "info", "json", zapcore.InfoLevel, false},
		{"local console", "debug", "console", zapcore.DebugLevel, false},
		{"quiet json", "error", "json", zapcore.ErrorLevel, false},
		{"unknown level rejected", "verbose", "json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			err := Init(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	reset()

	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init("debug", "console"); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if GetLevel() != zapcore.InfoLevel {
		t.Errorf("GetLevel() = %v after repeated Init, want the first call's InfoLevel", GetLevel())
	}
}

func TestSetLevel_HotReload(t *testing.T) {
	reset()

	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) error = %v", err)
	}
	if GetLevel() != zapcore.DebugLevel {
		t.Errorf("GetLevel() = %v, want DebugLevel", GetLevel())
	}

	if err := SetLevel("nonsense"); err == nil {
		t.Error("SetLevel(nonsense) should fail")
	}
	if GetLevel() != zapcore.DebugLevel {
		t.Errorf("failed SetLevel must not move the level, got %v", GetLevel())
	}
}

func TestL_PanicsWithoutInit(t *testing.T) {
	reset()

	defer func() {
		if recover() == nil {
			t.Error("L() should panic before Init()")
		}
	}()
	L()
}

func TestLevelFunctionsDoNotPanic(t *testing.T) {
	reset()

	if err := Init("debug", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")
	if S() == nil {
		t.Error("S() returned nil")
	}
	if With() == nil {
		t.Error("With() returned nil")
	}
}

func TestHTTPHandler(t *testing.T) {
	reset()

	if err := Init("warn", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	h := HTTPHandler()
	if h == nil {
		t.Fatal("HTTPHandler() returned nil")
	}
	if h.Level() != zapcore.WarnLevel {
		t.Errorf("HTTPHandler().Level() = %v, want WarnLevel", h.Level())
	}
}

func TestSync_SafeBeforeInit(t *testing.T) {
	reset()

	if err := Sync(); err != nil {
		t.Errorf("Sync() before Init error = %v", err)
	}
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	// Syncing stderr can fail in test environments; only panics matter.
	_ = Sync()
}
