package launcher

import (
	"fmt"
	"os"
	"os/exec"
)

// Process identifies a child started by a Spawner. The launcher does not
// supervise it.
type Process struct {
	PID int
}

type Spawner interface {
	Spawn(executable string, arguments ...string) (*Process, error)
}

// ExecSpawner starts processes with os/exec and releases them immediately.
// The child inherits the launcher's standard streams.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(executable string, arguments ...string) (process *Process, err error) {
	command := exec.Command(executable, arguments...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err = command.Start(); err != nil {
		return nil, fmt.Errorf("cannot start %s: %w", executable, err)
	}
	process = &Process{PID: command.Process.Pid}
	if err = command.Process.Release(); err != nil {
		return nil, fmt.Errorf("cannot release process %d: %w", process.PID, err)
	}
	return
}
