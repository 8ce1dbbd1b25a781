package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ItsNotGoodName/x-howm/internal/app"
	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
)

// Backend runs closures against the window manager on its owning goroutine.
type Backend interface {
	Do(ctx context.Context, fn func(m *wm.Manager, machine *input.Machine)) error
}

type InfoOutput struct {
	Body wm.Info
}

type WorkspacesOutput struct {
	Body []wm.WorkspaceSnapshot
}

type CommandInput struct {
	Body struct {
		Command string   `json:"command" doc:"Command name such as change_ws or spawn"`
		Arg     int      `json:"arg,omitempty" doc:"Integer argument"`
		Argv    []string `json:"argv,omitempty" doc:"Program and arguments for spawn"`
	}
}

type OperatorInput struct {
	Body struct {
		Operator string `json:"operator" doc:"Operator name such as kill or move_down"`
		Motion   string `json:"motion" enum:"client,workspace"`
		Count    int    `json:"count,omitempty" minimum:"1" maximum:"9" default:"1"`
	}
}

func Register(api huma.API, backend Backend, hub *bus.Hub[wm.Info]) {
	huma.Register(api, huma.Operation{
		OperationID: "get-info",
		Method:      http.MethodGet,
		Path:        "/api/info",
		Summary:     "Status of the active workspace",
	}, func(ctx context.Context, _ *struct{}) (*InfoOutput, error) {
		info, err := currentInfo(ctx, backend)
		if err != nil {
			return nil, apiError(err)
		}
		return &InfoOutput{Body: info}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-workspaces",
		Method:      http.MethodGet,
		Path:        "/api/workspaces",
		Summary:     "Snapshot of every workspace",
	}, func(ctx context.Context, _ *struct{}) (*WorkspacesOutput, error) {
		var snapshot []wm.WorkspaceSnapshot
		if err := backend.Do(ctx, func(m *wm.Manager, _ *input.Machine) {
			snapshot = m.Snapshot()
		}); err != nil {
			return nil, apiError(err)
		}
		return &WorkspacesOutput{Body: snapshot}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "run-command",
		Method:        http.MethodPost,
		Path:          "/api/commands",
		Summary:       "Run a command",
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, req *CommandInput) (*struct{}, error) {
		cmd, ok := wm.ParseCommand(req.Body.Command)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown command", &huma.ErrorDetail{
				Location: "body.command",
				Value:    req.Body.Command,
			})
		}

		arg := wm.Arg{Int: req.Body.Arg, Argv: req.Body.Argv}
		if err := backend.Do(ctx, func(_ *wm.Manager, machine *input.Machine) {
			machine.Command(cmd, arg)
		}); err != nil {
			return nil, apiError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "run-operator",
		Method:        http.MethodPost,
		Path:          "/api/operators",
		Summary:       "Run an operator",
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, req *OperatorInput) (*struct{}, error) {
		op, ok := wm.ParseOperator(req.Body.Operator)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown operator", &huma.ErrorDetail{
				Location: "body.operator",
				Value:    req.Body.Operator,
			})
		}
		motion, ok := wm.ParseMotion(req.Body.Motion)
		if !ok || !op.Accepts(motion) {
			return nil, huma.Error422UnprocessableEntity("motion not accepted by operator", &huma.ErrorDetail{
				Location: "body.motion",
				Value:    req.Body.Motion,
			})
		}

		inv := input.Invocation{Operator: op, Motion: motion, Count: max(req.Body.Count, 1)}
		if err := backend.Do(ctx, func(_ *wm.Manager, machine *input.Machine) {
			machine.Operate(inv)
		}); err != nil {
			return nil, apiError(err)
		}
		return nil, nil
	})

	sse.Register(api, huma.Operation{
		OperationID: "stream-info",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Stream status changes",
	}, map[string]any{
		"info": wm.Info{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		Stream(ctx, backend, hub, func(info wm.Info) error {
			return send.Data(info)
		})
	})
}

// Stream sends the current status followed by every change until ctx ends
// or send fails.
func Stream(ctx context.Context, backend Backend, hub *bus.Hub[wm.Info], send func(wm.Info) error) error {
	infoC, unsubscribe := hub.Subscribe(16)
	defer unsubscribe()

	info, err := currentInfo(ctx, backend)
	if err != nil {
		return err
	}
	if err := send(info); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case info := <-infoC:
			if err := send(info); err != nil {
				return err
			}
		}
	}
}

func currentInfo(ctx context.Context, backend Backend) (wm.Info, error) {
	var info wm.Info
	err := backend.Do(ctx, func(m *wm.Manager, machine *input.Machine) {
		info = m.Info(int(machine.State().Phase))
	})
	return info, err
}

func apiError(err error) error {
	if errors.Is(err, app.ErrClosed) {
		return huma.Error503ServiceUnavailable("window manager stopped", err)
	}
	return err
}
