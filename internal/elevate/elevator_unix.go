//go:build !windows

package elevate

import (
	"runtime"

	"arkhive.dev/appstub/internal/launcher"
)

const (
	OSASCRIPT_PATH = "/usr/bin/osascript"
	PKEXEC_PATH    = "/usr/bin/pkexec"
	SHELL_PATH     = "/bin/sh"
)

// SpawnElevator hands the request to the platform authentication helper
// without waiting for it.
type SpawnElevator struct {
	GOOS    string
	Spawner launcher.Spawner
}

var System Elevator = &SpawnElevator{GOOS: runtime.GOOS, Spawner: launcher.ExecSpawner{}}

// Command returns the helper executable and its arguments for request.
func (elevator *SpawnElevator) Command(request Request) (executable string, arguments []string, err error) {
	switch elevator.GOOS {
	case "darwin":
		return OSASCRIPT_PATH, []string{"-e", appleScript(request)}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return PKEXEC_PATH, []string{SHELL_PATH, "-c", request.CommandLine()}, nil
	default:
		return "", nil, ErrUnsupported
	}
}

func (elevator *SpawnElevator) Elevate(request Request) (err error) {
	var (
		executable string
		arguments  []string
	)
	if executable, arguments, err = elevator.Command(request); err != nil {
		return
	}
	_, err = elevator.Spawner.Spawn(executable, arguments...)
	return
}
