//go:build unit
// +build unit

package recovery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type warnRecorder struct {
	mu    sync.Mutex
	warns []string
}

func (l *warnRecorder) Debug(...interface{}) {}
func (l *warnRecorder) Info(...interface{})  {}
func (l *warnRecorder) Error(...interface{}) {}
func (l *warnRecorder) Fatal(...interface{}) {}
func (l *warnRecorder) Panic(...interface{}) {}

func (l *warnRecorder) Warn(args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprint(args...))
}

func (l *warnRecorder) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

func TestBroadcaster_RecentKeepsNewestFirst(t *testing.T) {
	b := NewBroadcaster(2)

	b.Notify(Notification{ID: "1"})
	b.Notify(Notification{ID: "2"})
	b.Notify(Notification{ID: "3"})

	recent := b.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].ID)
	assert.Equal(t, "2", recent[1].ID)
}

func TestBroadcaster_Subscribe(t *testing.T) {
	b := NewBroadcaster(10)

	ch, unsubscribe := b.Subscribe(1)
	b.Notify(Notification{ID: "a"})
	// buffer is full, this one is dropped for the subscriber
	b.Notify(Notification{ID: "b"})

	got := <-ch
	assert.Equal(t, "a", got.ID)

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	require.NotPanics(t, func() { b.Notify(Notification{ID: "c"}) })
	assert.Len(t, b.Recent(), 3)
}

func TestBroadcaster_LogTo(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBroadcaster(10)
	log := &warnRecorder{}
	ctx, cancel := context.WithCancel(context.Background())

	b.LogTo(ctx, log, 4)
	b.Notify(Notification{ID: "n-1", Op: "prices.fetch", Code: CodeNetworkRequestFailed})

	require.Eventually(t, func() bool { return len(log.lines()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Contains(t, log.lines()[0], "prices.fetch")
	assert.Contains(t, log.lines()[0], "n-1")

	cancel()
	require.Eventually(t, func() bool {
		b.mu.RLock()
		defer b.mu.RUnlock()
		return len(b.subscribers) == 0
	}, time.Second, 5*time.Millisecond)
}
