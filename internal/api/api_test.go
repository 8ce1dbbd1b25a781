package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ItsNotGoodName/x-howm/internal/app"
	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/danielgtaylor/huma/v2/humatest"
)

type nopDisplay struct{}

func (nopDisplay) Map(wm.Window)                            {}
func (nopDisplay) Unmap(wm.Window)                          {}
func (nopDisplay) SetBorderWidth(wm.Window, int)            {}
func (nopDisplay) SetBorderColor(wm.Window, uint32)         {}
func (nopDisplay) MoveResize(wm.Window, int, int, int, int) {}
func (nopDisplay) Raise(wm.Window)                          {}
func (nopDisplay) Focus(wm.Window)                          {}
func (nopDisplay) SetActiveWindow(wm.Window)                {}
func (nopDisplay) ClearActiveWindow()                       {}
func (nopDisplay) SetFullscreen(wm.Window, bool)            {}
func (nopDisplay) Close(wm.Window)                          {}

type testBackend struct {
	mu      sync.Mutex
	manager *wm.Manager
	machine *input.Machine
	closed  bool
}

func newTestBackend() *testBackend {
	settings := wm.DefaultSettings()
	manager := wm.New(nopDisplay{}, nil, wm.Screen{Width: 1000, Height: 820}, settings)
	return &testBackend{
		manager: manager,
		machine: input.NewMachine(manager, input.DefaultBindings([]string{"xterm"}, settings.Workspaces)),
	}
}

func (b *testBackend) Do(ctx context.Context, fn func(m *wm.Manager, machine *input.Machine)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return app.ErrClosed
	}
	fn(b.manager, b.machine)
	return nil
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *testBackend) {
	t.Helper()

	_, api := humatest.New(t)
	backend := newTestBackend()
	backend.manager.HandleMapRequest(wm.MapRequest{Win: 10})
	backend.manager.HandleMapRequest(wm.MapRequest{Win: 11})
	Register(api, backend, bus.NewHub[wm.Info]())

	return api, backend
}

func TestGetInfo(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/api/info")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var info wm.Info
	if err := json.Unmarshal(resp.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Workspace != 1 || info.Clients != 2 {
		t.Fatalf("info = %+v", info)
	}
}

func TestListWorkspaces(t *testing.T) {
	api, backend := newTestAPI(t)

	resp := api.Get("/api/workspaces")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var snapshot []wm.WorkspaceSnapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snapshot) != backend.manager.Count() {
		t.Fatalf("workspaces = %d, want %d", len(snapshot), backend.manager.Count())
	}
	if !snapshot[0].Active || len(snapshot[0].Clients) != 2 {
		t.Fatalf("first workspace = %+v", snapshot[0])
	}
}

func TestRunCommand(t *testing.T) {
	api, backend := newTestAPI(t)

	resp := api.Post("/api/commands", map[string]any{"command": "change_ws", "arg": 3})
	if resp.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if backend.manager.ActiveIndex() != 3 {
		t.Fatalf("active = %d, want 3", backend.manager.ActiveIndex())
	}

	// Commands run through the API are remembered for replay.
	backend.manager.ChangeWS(1)
	if resp := api.Post("/api/commands", map[string]any{"command": "replay"}); resp.Code != http.StatusNoContent {
		t.Fatalf("replay status = %d", resp.Code)
	}
	if backend.manager.ActiveIndex() != 3 {
		t.Fatalf("active after replay = %d, want 3", backend.manager.ActiveIndex())
	}
}

func TestRunCommandUnknown(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Post("/api/commands", map[string]any{"command": "explode"})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.Code)
	}
}

func TestRunOperator(t *testing.T) {
	api, backend := newTestAPI(t)

	resp := api.Post("/api/operators", map[string]any{"operator": "kill", "motion": "client", "count": 2})
	if resp.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if n := backend.manager.Active().Len(); n != 0 {
		t.Fatalf("clients = %d, want 0", n)
	}
}

func TestRunOperatorValidation(t *testing.T) {
	api, _ := newTestAPI(t)

	for _, body := range []map[string]any{
		{"operator": "explode", "motion": "client"},
		{"operator": "kill", "motion": "galaxy"},
		{"operator": "kill", "motion": "client", "count": 10},
		{"operator": "kill", "motion": "client", "count": 0},
	} {
		if resp := api.Post("/api/operators", body); resp.Code != http.StatusUnprocessableEntity {
			t.Errorf("%v: status = %d, want 422", body, resp.Code)
		}
	}
}

func TestClosedBackend(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.closed = true

	if resp := api.Get("/api/info"); resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.Code)
	}
}

func TestStream(t *testing.T) {
	backend := newTestBackend()
	hub := bus.NewHub[wm.Info]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infoC := make(chan wm.Info, 4)
	errC := make(chan error, 1)
	go func() {
		errC <- Stream(ctx, backend, hub, func(info wm.Info) error {
			infoC <- info
			return nil
		})
	}()

	select {
	case info := <-infoC:
		if info.Clients != 0 {
			t.Fatalf("initial info = %+v", info)
		}
	case <-time.After(time.Second):
		t.Fatalf("no initial info")
	}

	// The subscription exists once the initial info was sent.
	if err := hub.Broadcast(ctx, wm.Info{Workspace: 2, Clients: 5}); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	select {
	case info := <-infoC:
		if info.Workspace != 2 || info.Clients != 5 {
			t.Fatalf("streamed info = %+v", info)
		}
	case <-time.After(time.Second):
		t.Fatalf("no streamed info")
	}

	cancel()
	if err := <-errC; !errors.Is(err, context.Canceled) {
		t.Fatalf("Stream = %v, want context.Canceled", err)
	}
}
