package input

import "github.com/ItsNotGoodName/x-howm/internal/wm"

type replayKind int

const (
	replayNone replayKind = iota
	replayInvocation
	replayCommand
)

// Replay remembers the last executed invocation or command.
type Replay struct {
	kind replayKind
	inv  Invocation
	cmd  wm.Command
	arg  wm.Arg
}

func (r *Replay) recordInvocation(inv Invocation) {
	r.kind = replayInvocation
	r.inv = inv
}

func (r *Replay) recordCommand(cmd wm.Command, arg wm.Arg) {
	r.kind = replayCommand
	r.cmd = cmd
	r.arg = arg
}

// Empty reports whether nothing has been recorded yet.
func (r *Replay) Empty() bool {
	return r.kind == replayNone
}

// run executes the recorded action again. It returns false when there is
// nothing to replay.
func (r *Replay) run(exec Executor) bool {
	switch r.kind {
	case replayInvocation:
		exec.Operate(r.inv.Operator, r.inv.Motion, r.inv.Count)
	case replayCommand:
		exec.Run(r.cmd, r.arg)
	default:
		return false
	}
	return true
}
