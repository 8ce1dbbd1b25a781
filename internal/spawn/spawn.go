package spawn

import (
	"log/slog"
	"os"
	"os/exec"
	"syscall"
)

// Spawner launches programs detached from the window manager's session.
type Spawner struct {
	Env []string
}

func (s Spawner) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to spawn", "package", "spawn", "argv", argv, "error", err)
		return
	}
	slog.Debug("Spawned", "package", "spawn", "argv", argv, "pid", cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("Spawned process exited", "package", "spawn", "argv", argv, "error", err)
		}
	}()
}
