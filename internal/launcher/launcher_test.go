package launcher_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"arkhive.dev/appstub/internal/launcher"
	"arkhive.dev/appstub/internal/selfpath"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const COMPANION_NAME = "launch.scpt"

type spawnCall struct {
	executable string
	arguments  []string
}

type fakeSpawner struct {
	calls []spawnCall
	err   error
}

func (spawner *fakeSpawner) Spawn(executable string, arguments ...string) (*launcher.Process, error) {
	spawner.calls = append(spawner.calls, spawnCall{executable, arguments})
	if spawner.err != nil {
		return nil, spawner.err
	}
	return &launcher.Process{PID: 4242}, nil
}

func interpreterPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\System32\wscript.exe`
	}
	return "/usr/bin/osascript"
}

// newTestLauncher returns a launcher whose executable lives in a temporary
// bundle directory, together with the fake collaborators it uses.
func newTestLauncher(t *testing.T) (*launcher.Launcher, *fakeSpawner, *test.Hook, string) {
	bundle := filepath.Join(t.TempDir(), "Foo.app", "Contents", "MacOS")
	require.NoError(t, os.MkdirAll(bundle, 0755))
	executable := filepath.Join(bundle, "Foo")

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	spawner := &fakeSpawner{}

	instance := launcher.NewLauncher(interpreterPath(), COMPANION_NAME)
	instance.Lookup = selfpath.LookupFunc(func(int) (string, error) { return executable, nil })
	instance.Spawner = spawner
	instance.Logger = logger
	return instance, spawner, hook, bundle
}

func TestDeriveCompanionPathScenario(t *testing.T) {
	self := selfpath.ResolvedPath(filepath.FromSlash("/Applications/Foo.app/Contents/MacOS/Foo"))
	companion := launcher.DeriveCompanionPath(self, "bar.scpt")
	assert.Equal(t, filepath.FromSlash("/Applications/Foo.app/Contents/MacOS/bar.scpt"), companion.String())
}

func TestDeriveCompanionPathIgnoresWorkingDirectory(t *testing.T) {
	self := selfpath.ResolvedPath(filepath.Join(t.TempDir(), "bin", "tool"))
	first := launcher.DeriveCompanionPath(self, COMPANION_NAME)

	workingDirectory, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(workingDirectory)
	require.NoError(t, os.Chdir(t.TempDir()))

	second := launcher.DeriveCompanionPath(self, COMPANION_NAME)
	assert.Equal(t, first, second)
	assert.Equal(t, self.Dir(), second.Dir())
}

func TestRunHandsOffCompanion(t *testing.T) {
	instance, spawner, _, bundle := newTestLauncher(t)
	companion := filepath.Join(bundle, COMPANION_NAME)
	require.NoError(t, os.WriteFile(companion, []byte("-- script"), 0644))

	var handoffs []launcher.Handoff
	instance.HandoffEventEmitter.Subscribe(func(handoff launcher.Handoff) {
		handoffs = append(handoffs, handoff)
	})

	require.NoError(t, instance.Run())
	require.Len(t, spawner.calls, 1)
	assert.Equal(t, interpreterPath(), spawner.calls[0].executable)
	assert.Equal(t, []string{companion}, spawner.calls[0].arguments)

	require.Len(t, handoffs, 1)
	assert.Equal(t, 4242, handoffs[0].PID)
	assert.Equal(t, companion, handoffs[0].CompanionPath.String())
	assert.Equal(t, filepath.Join(bundle, "Foo"), handoffs[0].SelfPath.String())
	assert.NoError(t, handoffs[0].Err)
}

func TestRunMissingCompanion(t *testing.T) {
	instance, spawner, _, _ := newTestLauncher(t)

	var handoffs []launcher.Handoff
	instance.HandoffEventEmitter.Subscribe(func(handoff launcher.Handoff) {
		handoffs = append(handoffs, handoff)
	})

	err := instance.Run()
	var spawnError *launcher.SpawnError
	require.True(t, errors.As(err, &spawnError))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, spawner.calls)

	require.Len(t, handoffs, 1)
	assert.Equal(t, 0, handoffs[0].PID)
	assert.Error(t, handoffs[0].Err)
}

func TestRunCompanionIsDirectory(t *testing.T) {
	instance, spawner, _, bundle := newTestLauncher(t)
	require.NoError(t, os.Mkdir(filepath.Join(bundle, COMPANION_NAME), 0755))

	err := instance.Run()
	assert.ErrorIs(t, err, launcher.ErrCompanionNotFile)
	assert.Empty(t, spawner.calls)
}

func TestRunSpawnFailureIsPropagated(t *testing.T) {
	instance, spawner, _, bundle := newTestLauncher(t)
	require.NoError(t, os.WriteFile(filepath.Join(bundle, COMPANION_NAME), nil, 0644))
	spawner.err = errors.New("permission denied")

	err := instance.Run()
	var spawnError *launcher.SpawnError
	require.True(t, errors.As(err, &spawnError))
	assert.Equal(t, "permission denied", spawnError.Err.Error())
	assert.Len(t, spawner.calls, 1)
}

func TestRunRelativeInterpreter(t *testing.T) {
	instance, spawner, _, bundle := newTestLauncher(t)
	require.NoError(t, os.WriteFile(filepath.Join(bundle, COMPANION_NAME), nil, 0644))
	instance.Interpreter = "osascript"

	var spawnError *launcher.SpawnError
	assert.True(t, errors.As(instance.Run(), &spawnError))
	assert.Empty(t, spawner.calls)
}

func TestRunResolutionFailureIsFatal(t *testing.T) {
	instance, spawner, hook, _ := newTestLauncher(t)
	lookups := 0
	instance.Lookup = selfpath.LookupFunc(func(bufferSize int) (string, error) {
		lookups++
		return "", &selfpath.ShortBufferError{Size: bufferSize, Required: bufferSize * 4}
	})
	exitCode := -1
	instance.Logger.ExitFunc = func(code int) { exitCode = code }

	handoffs := 0
	instance.HandoffEventEmitter.Subscribe(func(launcher.Handoff) { handoffs++ })

	err := instance.Run()
	assert.ErrorIs(t, err, selfpath.ErrPathResolution)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, 2, lookups)
	assert.Empty(t, spawner.calls)
	assert.Equal(t, 0, handoffs)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
}
