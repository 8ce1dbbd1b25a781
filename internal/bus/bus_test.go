package bus

import (
	"context"
	"errors"
	"testing"
)

type testEvent struct {
	N int
}

func TestPublishSubscribe(t *testing.T) {
	var got []int
	Subscribe("test", func(ctx context.Context, event testEvent) error {
		got = append(got, event.N)
		return nil
	})
	Subscribe("failing", func(ctx context.Context, event testEvent) error {
		return errors.New("boom")
	})

	Publish(testEvent{N: 1})
	Publish(testEvent{N: 2})
	Publish(struct{}{})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected events %v", got)
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	h := NewHub[int]()
	c, unsubscribe := h.Subscribe(1)
	defer unsubscribe()

	ctx := context.Background()
	if err := h.Broadcast(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Broadcast(ctx, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := <-c; v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	select {
	case v := <-c:
		t.Fatalf("expected second event to be dropped, got %d", v)
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub[int]()
	c, unsubscribe := h.Subscribe(1)
	unsubscribe()

	if err := h.Broadcast(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case v := <-c:
		t.Fatalf("expected no event after unsubscribe, got %d", v)
	default:
	}
}
