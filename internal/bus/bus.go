package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	_ctx   = context.Background()
	subsMu sync.RWMutex
	subs   = make(map[string][]func(ctx context.Context, T any))
)

func SetContext(ctx context.Context) {
	_ctx = ctx
}

func topic[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}

func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	subsMu.Lock()
	defer subsMu.Unlock()

	t := topic[T]()
	subs[t] = append(subs[t], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
}

func Publish[T any](event T) {
	subsMu.RLock()
	fns := subs[topic[T]()]
	subsMu.RUnlock()

	for _, fn := range fns {
		fn(_ctx, event)
	}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[*chan T]struct{}),
	}
}

// Hub fans events out to channel subscribers. A subscriber that is not
// keeping up misses events instead of blocking the publisher.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[*chan T]struct{}
}

func (h *Hub[T]) Broadcast(ctx context.Context, event T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case *sub <- event:
		default:
			slog.Debug("Dropped event for slow subscriber", "package", "bus", "topic", topic[T]())
		}
	}

	return nil
}

// Register subscribes the hub to published events of its type.
func (h *Hub[T]) Register() *Hub[T] {
	Subscribe("bus.Hub", h.Broadcast)
	return h
}

func (h *Hub[T]) Subscribe(size int) (<-chan T, func()) {
	h.mu.Lock()
	c := make(chan T, size)

	key := &c
	h.subs[key] = struct{}{}
	h.mu.Unlock()

	return c, func() {
		h.mu.Lock()
		delete(h.subs, key)
		h.mu.Unlock()
	}
}
