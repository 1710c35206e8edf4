//go:build unit
// +build unit

package cryptography

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps every message so tests can assert on warnings.
type recordingLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{messages: map[string][]string{}}
}

func (l *recordingLogger) record(level string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], fmt.Sprint(args...))
}

func (l *recordingLogger) Debug(args ...interface{}) { l.record("debug", args...) }
func (l *recordingLogger) Info(args ...interface{})  { l.record("info", args...) }
func (l *recordingLogger) Warn(args ...interface{})  { l.record("warn", args...) }
func (l *recordingLogger) Error(args ...interface{}) { l.record("error", args...) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.record("fatal", args...) }
func (l *recordingLogger) Panic(args ...interface{}) { l.record("panic", args...) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages[level])
}

// requireKind asserts that err wraps target and carries the given taxonomy kind.
func requireKind(t *testing.T, err error, kind cryptoalg.ErrorKind, target error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, cryptoalg.KindOf(err), "unexpected kind for %v", err)
	if target != nil {
		assert.ErrorIs(t, err, target)
	}
}
