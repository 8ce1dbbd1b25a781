package xwm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/thejerf/suture/v4"
)

var ErrClosed = errors.New("x connection closed")

// ReceiveEvents pumps events from conn into eventC until the connection
// closes or ctx is done. Protocol errors from unchecked requests are logged
// and skipped; they usually refer to windows that are already gone.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, eventC chan<- xgb.Event) error {
	slog := slog.With("func", "xwm.ReceiveEvents")

	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("exit: no event or error")
			return ErrClosed
		}

		if err != nil {
			slog.Debug("X protocol error", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case eventC <- ev:
		}
	}
}

// Receiver runs ReceiveEvents as a supervised service.
type Receiver struct {
	conn   *xgb.Conn
	eventC chan<- xgb.Event
}

func NewReceiver(conn *xgb.Conn, eventC chan<- xgb.Event) Receiver {
	return Receiver{
		conn:   conn,
		eventC: eventC,
	}
}

func (Receiver) String() string {
	return "xwm.Receiver"
}

// Serve stops the whole supervisor tree once the connection is gone since
// nothing can work without it.
func (r Receiver) Serve(ctx context.Context) error {
	err := ReceiveEvents(ctx, r.conn, r.eventC)
	if errors.Is(err, ErrClosed) {
		return errors.Join(err, suture.ErrTerminateSupervisorTree)
	}
	return err
}
