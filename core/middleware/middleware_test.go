package middleware_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/actorkit/actorkit/core"
	"github.com/actorkit/actorkit/core/middleware"
	"github.com/actorkit/actorkit/internal/testkit"
)

type pingMessage struct{ core.Base }

func newTestContext(log core.Logger) *core.Context {
	return core.NewContext(nil, log, "/test")
}

func TestLogging_OK(t *testing.T) {
	log := testkit.NewRecordingLogger()
	handler := middleware.Logging()(func(ctx *core.Context, msg core.Message) (any, error) {
		return "ok", nil
	})

	ctx := newTestContext(log)
	value, err := handler(ctx, pingMessage{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "ok" {
		t.Fatalf("expected ok, got %v", value)
	}
	if !log.HasEntryContaining("handler ok") {
		t.Errorf("expected a handler-ok log entry, got: %v", log.Entries())
	}
}

func TestLogging_Error(t *testing.T) {
	log := testkit.NewRecordingLogger()
	handler := middleware.Logging()(func(ctx *core.Context, msg core.Message) (any, error) {
		return nil, errors.New("boom")
	})

	ctx := newTestContext(log)
	if _, err := handler(ctx, pingMessage{}); err == nil {
		t.Fatal("expected error to pass through")
	}
	if !log.HasEntryContaining("handler failed") {
		t.Errorf("expected a handler-failed log entry, got: %v", log.Entries())
	}
}

func TestRecovery_RecoversPanic(t *testing.T) {
	log := testkit.NewRecordingLogger()
	handler := middleware.Recovery()(func(ctx *core.Context, msg core.Message) (any, error) {
		panic("test panic")
	})

	ctx := newTestContext(log)
	_, err := handler(ctx, pingMessage{})
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	if !strings.Contains(err.Error(), "panic") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRecovery_NoPanic(t *testing.T) {
	handler := middleware.Recovery()(func(ctx *core.Context, msg core.Message) (any, error) {
		return 42, nil
	})

	ctx := newTestContext(testkit.NewRecordingLogger())
	value, err := handler(ctx, pingMessage{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected 42, got %v", value)
	}
}
