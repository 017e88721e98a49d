package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Listener handles an emitted event. Its error is logged and never reaches the emitter's caller.
type Listener func(ctx context.Context, event Event) error

// Emitter delivers events synchronously to its subscribers, in subscription order.
// It is passed explicitly to whoever produces events.
type Emitter struct {
	mu        sync.RWMutex
	nextID    int
	listeners []subscription
	now       func() time.Time
}

type subscription struct {
	id       int
	listener Listener
}

func NewEmitter() *Emitter {
	return &Emitter{
		now: time.Now,
	}
}

// Subscribe adds the listener and returns a func removing it again.
func (e *Emitter) Subscribe(listener Listener) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, subscription{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() {
			e.remove(id)
		})
	}
}

func (e *Emitter) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.listeners {
		if s.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Emitter) ListenersCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

func (e *Emitter) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = e.now()
	}

	e.mu.RLock()
	listeners := make([]subscription, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, s := range listeners {
		if err := notify(ctx, s.listener, event); err != nil {
			log.Errorf("event listener %d, event [%s] for user [%s]: %s", s.id, event.Type, event.UserID, err)
		}
	}
}

func notify(ctx context.Context, listener Listener, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return listener(ctx, event)
}

// LogListener writes every event to the service log.
func LogListener() Listener {
	return func(_ context.Context, event Event) error {
		log.WithFields(log.Fields{
			"type":    event.Type,
			"user_id": event.UserID,
		}).Debugf("event emitted: %v", event.Data)
		return nil
	}
}
