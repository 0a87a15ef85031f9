//go:build linux

package selfpath

import "golang.org/x/sys/unix"

const PROC_SELF_EXE = "/proc/self/exe"

type systemLookup struct{}

// System reads the /proc/self/exe link. readlink truncates silently, so a
// full buffer is reported as too small with PATH_MAX as the required size.
var System Lookup = systemLookup{}

func (systemLookup) ExecutablePath(bufferSize int) (string, error) {
	buffer := make([]byte, bufferSize)
	length, err := unix.Readlink(PROC_SELF_EXE, buffer)
	if err != nil {
		return "", err
	}
	if length >= bufferSize {
		return "", &ShortBufferError{Size: bufferSize, Required: unix.PathMax}
	}
	return string(buffer[:length]), nil
}
