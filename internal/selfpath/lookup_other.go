//go:build !linux && !windows && !(darwin && cgo)

package selfpath

import "os"

type systemLookup struct{}

// System falls back on os.Executable where no native lookup is wired.
var System Lookup = systemLookup{}

func (systemLookup) ExecutablePath(bufferSize int) (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}
	if len(path) >= bufferSize {
		return "", &ShortBufferError{Size: bufferSize, Required: len(path) + 1}
	}
	return path, nil
}
