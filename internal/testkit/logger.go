// Package testkit provides a test double for actorkit's Logger
// collaborator interface (RecordingLogger), adapted from the
// teacher's internal/mock broker/message doubles and from
// original_source/libactors/testing/mocks's one-mock-per-collaborator
// pattern.
package testkit

import (
	"strings"
	"sync"

	"github.com/actorkit/actorkit/core"
)

// Entry is one recorded call to a RecordingLogger.
type Entry struct {
	Level core.Level
	Msg   string
	KV    []any
	Err   error
}

// RecordingLogger is a core.Logger test double that records every call
// instead of writing anywhere, so tests can assert on what was logged.
type RecordingLogger struct {
	mu      sync.Mutex
	entries *[]Entry
	bound   []any
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	entries := make([]Entry, 0)
	return &RecordingLogger{entries: &entries}
}

func (l *RecordingLogger) record(level core.Level, msg string, err error, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, Entry{
		Level: level,
		Msg:   msg,
		KV:    append(append([]any{}, l.bound...), kv...),
		Err:   err,
	})
}

func (l *RecordingLogger) Debug(msg string, kv ...any)   { l.record(core.LevelDebug, msg, nil, kv) }
func (l *RecordingLogger) Info(msg string, kv ...any)    { l.record(core.LevelInfo, msg, nil, kv) }
func (l *RecordingLogger) Warning(msg string, kv ...any) { l.record(core.LevelWarning, msg, nil, kv) }
func (l *RecordingLogger) Error(msg string, kv ...any)   { l.record(core.LevelError, msg, nil, kv) }
func (l *RecordingLogger) Fatal(msg string, kv ...any)   { l.record(core.LevelFatal, msg, nil, kv) }
func (l *RecordingLogger) Exception(msg string, err error, kv ...any) {
	l.record(core.LevelError, msg, err, kv)
}
func (l *RecordingLogger) Log(level core.Level, msg string, kv ...any) {
	l.record(level, msg, nil, kv)
}

// Bind returns a derived RecordingLogger sharing the same entries slice
// but with its own set of permanently-attached fields, mirroring
// core.Logger.Bind's "never mutates the receiver" contract.
func (l *RecordingLogger) Bind(kv ...any) core.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &RecordingLogger{
		entries: l.entries,
		bound:   append(append([]any{}, l.bound...), kv...),
	}
}

// Entries returns a snapshot of every call recorded so far.
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// HasEntryContaining reports whether any recorded entry's message contains
// substr.
func (l *RecordingLogger) HasEntryContaining(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
