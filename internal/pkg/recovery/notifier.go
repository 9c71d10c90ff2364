package recovery

import (
	"context"
	"sync"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// Notification levels
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// GenericFailureMessage is shown to users when an operation could not be recovered
const GenericFailureMessage = "Algo salió mal. Por favor, inténtalo de nuevo más tarde."

// Notification is the user facing event raised when recovery gives up
type Notification struct {
	ID      string    `json:"id"`
	Level   string    `json:"level"`
	Op      string    `json:"op"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier receives notifications
type Notifier interface {
	Notify(n Notification)
}

// Broadcaster fans notifications out to subscribers and remembers the most
// recent ones. Slow subscribers miss events instead of blocking Notify.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[int]chan Notification
	nextID      int
	recent      []Notification
	capacity    int
}

// NewBroadcaster keeps at most capacity notifications for Recent
func NewBroadcaster(capacity int) *Broadcaster {
	if capacity < 1 {
		capacity = 1
	}
	return &Broadcaster{
		subscribers: make(map[int]chan Notification),
		capacity:    capacity,
	}
}

// Notify records n and delivers it to every subscriber with room in its buffer
func (b *Broadcaster) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.recent = append(b.recent, n)
	if len(b.recent) > b.capacity {
		b.recent = b.recent[len(b.recent)-b.capacity:]
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribe returns a channel receiving future notifications and a function
// that closes it
func (b *Broadcaster) Subscribe(buffer int) (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Notification, buffer)
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, id)
			close(ch)
		})
	}
}

// LogTo subscribes before returning and writes every later notification to
// log as a warning until ctx is done.
func (b *Broadcaster) LogTo(ctx context.Context, log logger.Logger, buffer int) {
	events, unsubscribe := b.Subscribe(buffer)
	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-events:
				log.Warn("Unrecovered failure in ", n.Op, " (", n.Code, "), notification ", n.ID)
			}
		}
	}()
}

// Recent returns the remembered notifications, newest first
func (b *Broadcaster) Recent() []Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Notification, len(b.recent))
	for i, n := range b.recent {
		out[len(b.recent)-1-i] = n
	}
	return out
}
