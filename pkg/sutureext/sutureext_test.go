package sutureext

import (
	"context"
	"errors"
	"testing"

	"github.com/thejerf/suture/v4"
)

func TestSanitizeError(t *testing.T) {
	ctx := context.Background()

	if err := SanitizeError(ctx, nil); err != nil {
		t.Fatalf("nil error became %v", err)
	}

	plain := errors.New("boom")
	if err := SanitizeError(ctx, plain); err != plain {
		t.Fatalf("plain error changed to %v", err)
	}

	err := SanitizeError(ctx, errors.Join(context.Canceled, suture.ErrDoNotRestart))
	if errors.Is(err, context.Canceled) {
		t.Fatalf("context error leaked from a live context: %v", err)
	}
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("ErrDoNotRestart lost: %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := SanitizeError(canceled, plain); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled context returned %v", err)
	}
}
