package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
)

// PrintInfo writes every status line change to w, one per line, for status
// bars reading standard output.
func PrintInfo(w io.Writer) {
	bus.Subscribe("app.PrintInfo", func(ctx context.Context, info wm.Info) error {
		_, err := fmt.Fprintln(w, info.String())
		return err
	})
}
