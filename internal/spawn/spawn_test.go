package spawn

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSpawn(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")

	Spawner{}.Spawn([]string{"/bin/sh", "-c", "touch " + marker})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected spawned process to create %s", marker)
}

func TestSpawnMissingProgram(t *testing.T) {
	Spawner{}.Spawn(nil)
	Spawner{}.Spawn([]string{"/nonexistent/program"})
}
