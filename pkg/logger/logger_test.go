package logger

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
)

const testLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsLoggerInstance(t *testing.T) {
	log := Get(testLogLevel)
	if log == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	log1 := Get(testLogLevel)
	log2 := Get(-1)
	if log1 != log2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	ctx := context.Background()
	log := Get(testLogLevel)
	newCtx := WithLogger(ctx, log)

	got := newCtx.Value(loggerContextKey{})
	if got == nil {
		t.Fatal("WithLogger should add logger to context")
	}
	if got != log {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	log := Get(testLogLevel)
	ctx := WithLogger(context.Background(), log)
	ctx2 := WithLogger(ctx, log)
	if ctx != ctx2 {
		t.Error("WithLogger should return the original context for the same logger")
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	log := Get(testLogLevel)
	got := FromContext(context.Background())
	if got != log {
		t.Error("FromContext should fall back to the global logger")
	}
}

func TestFromContextPrefersAttachedLogger(t *testing.T) {
	Get(testLogLevel)
	attached := logr.Discard()
	ctx := WithLogger(context.Background(), &attached)
	if got := FromContext(ctx); got != &attached {
		t.Error("FromContext should prefer the context-attached logger")
	}
}

func TestGetNoopLoggerDiscards(t *testing.T) {
	log := GetNoopLogger()
	if log == nil {
		t.Fatal("GetNoopLogger should return a non-nil logger")
	}
	// Must not panic.
	log.Info("discarded")
}

func TestWithValuesReturnsAugmentedLogger(t *testing.T) {
	base := GetNoopLogger()
	augmented := WithValues(base, "k", "v")
	if augmented == nil {
		t.Fatal("WithValues should return a non-nil logger")
	}
	if augmented == base {
		t.Error("WithValues should return a new logger handle")
	}
}

func TestSyncDoesNotPanicWithoutSetup(t *testing.T) {
	// Sync on a possibly-initialized logger writing to stderr must never
	// panic, whatever the sink returns.
	Sync()
}
