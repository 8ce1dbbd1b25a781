package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ItsNotGoodName/x-howm/internal/build"
	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/ItsNotGoodName/x-howm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(backend Backend, hub *bus.Hub[wm.Info]) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())
	r.Use(middleware.Recoverer)

	Register(humachi.New(r, huma.DefaultConfig("x-howm", build.Current.Version)), backend, hub)

	return r
}

type Server struct {
	addr    string
	handler http.Handler
}

func NewServer(addr string, handler http.Handler) Server {
	return Server{
		addr:    addr,
		handler: handler,
	}
}

func (Server) String() string {
	return "api.Server"
}

func (s Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()

	slog.Info("Listening", "package", "api", "address", s.addr)

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Failed to shutdown server", "package", "api", "error", err)
	}

	return ctx.Err()
}
