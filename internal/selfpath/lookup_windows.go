//go:build windows

package selfpath

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Longest path GetModuleFileNameW can return, in UTF-16 code units.
const MAX_LONG_PATH = 32768

type systemLookup struct{}

// System reads the path through GetModuleFileNameW. A truncated result is
// reported as too small with the long path limit as the required size.
var System Lookup = systemLookup{}

func (systemLookup) ExecutablePath(bufferSize int) (string, error) {
	buffer := make([]uint16, bufferSize)
	length, err := windows.GetModuleFileName(0, &buffer[0], uint32(bufferSize))
	if errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) || (err == nil && int(length) >= bufferSize) {
		return "", &ShortBufferError{Size: bufferSize, Required: MAX_LONG_PATH}
	}
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(buffer[:length]), nil
}
