// Package launcher hands execution over to a companion script stored next
// to the running executable.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"arkhive.dev/appstub/internal/selfpath"
	"arkhive.dev/appstub/pkg/eventemitter"
	"github.com/sirupsen/logrus"
)

var ErrCompanionNotFile = errors.New("companion is not a regular file")

type SpawnError struct {
	Interpreter string
	Companion   selfpath.ResolvedPath
	Err         error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot launch %s with %s: %v", e.Companion, e.Interpreter, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Handoff describes one launch attempt.
type Handoff struct {
	SelfPath      selfpath.ResolvedPath
	CompanionPath selfpath.ResolvedPath
	Interpreter   string
	PID           int
	Err           error
}

type Launcher struct {
	Interpreter string
	Companion   string
	Lookup      selfpath.Lookup
	Spawner     Spawner
	Logger      *logrus.Logger

	// Event emitters
	HandoffEventEmitter *eventemitter.EventEmitter[Handoff]
}

func NewLauncher(interpreter string, companion string) (instance *Launcher) {
	instance = &Launcher{
		Interpreter:         interpreter,
		Companion:           companion,
		Lookup:              selfpath.System,
		Spawner:             ExecSpawner{},
		Logger:              logrus.StandardLogger(),
		HandoffEventEmitter: &eventemitter.EventEmitter[Handoff]{},
	}
	return
}

// DeriveCompanionPath replaces the executable name of selfPath with the
// companion file name. The result is never checked for existence.
func DeriveCompanionPath(selfPath selfpath.ResolvedPath, companion string) selfpath.ResolvedPath {
	return selfpath.ResolvedPath(filepath.Join(selfPath.Dir().String(), companion))
}

// Run resolves the executable path, derives the companion path and
// launches it. A resolution failure is fatal: it is logged through
// Logger.Fatalf and nothing is spawned.
func (launcher *Launcher) Run() (err error) {
	var selfPath selfpath.ResolvedPath
	if selfPath, err = selfpath.Resolve(launcher.Lookup); err != nil {
		launcher.Logger.Fatalf("%+v", err)
		return
	}
	launcher.Logger.Debugf("Launcher located at %s", selfPath)

	companionPath := DeriveCompanionPath(selfPath, launcher.Companion)
	var process *Process
	process, err = launcher.Launch(companionPath)

	handoff := Handoff{
		SelfPath:      selfPath,
		CompanionPath: companionPath,
		Interpreter:   launcher.Interpreter,
		Err:           err,
	}
	if process != nil {
		handoff.PID = process.PID
	}
	launcher.HandoffEventEmitter.Emit(handoff)
	return
}

// Launch starts the interpreter with companionPath as its only argument.
func (launcher *Launcher) Launch(companionPath selfpath.ResolvedPath) (process *Process, err error) {
	spawnError := func(err error) error {
		return &SpawnError{Interpreter: launcher.Interpreter, Companion: companionPath, Err: err}
	}

	if !filepath.IsAbs(launcher.Interpreter) {
		return nil, spawnError(fmt.Errorf("interpreter path %q is not absolute", launcher.Interpreter))
	}
	var info os.FileInfo
	if info, err = os.Stat(companionPath.String()); err != nil {
		return nil, spawnError(err)
	}
	if !info.Mode().IsRegular() {
		return nil, spawnError(ErrCompanionNotFile)
	}

	launcher.Logger.Infof("Handing off %s to %s", companionPath, launcher.Interpreter)
	if process, err = launcher.Spawner.Spawn(launcher.Interpreter, companionPath.String()); err != nil {
		return nil, spawnError(err)
	}
	launcher.Logger.Debugf("Started process %d", process.PID)
	return
}
