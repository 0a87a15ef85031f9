// Package selfpath resolves the absolute path of the running executable.
//
// Platform lookups only report what the operating system returns for a
// buffer of a given size; Resolve owns the buffer sizing and retries once
// when the lookup reports the size it actually needs.
package selfpath

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Size of the first lookup buffer. Matches MAXPATHLEN on darwin.
const INITIAL_BUFFER_SIZE = 1024

var ErrPathResolution = errors.New("cannot resolve executable path")

// ResolvedPath is an absolute, cleaned filesystem path.
type ResolvedPath string

func (resolvedPath ResolvedPath) String() string {
	return string(resolvedPath)
}

// Dir returns the directory containing the path.
func (resolvedPath ResolvedPath) Dir() ResolvedPath {
	return ResolvedPath(filepath.Dir(string(resolvedPath)))
}

// Lookup asks the operating system for the executable path using a buffer
// of the given size. When the buffer is too small it returns a
// *ShortBufferError carrying the size the system asked for.
type Lookup interface {
	ExecutablePath(bufferSize int) (string, error)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(bufferSize int) (string, error)

func (lookupFunc LookupFunc) ExecutablePath(bufferSize int) (string, error) {
	return lookupFunc(bufferSize)
}

type ShortBufferError struct {
	Size     int
	Required int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("executable path buffer too small: have %d, need %d", e.Size, e.Required)
}

type PathResolutionError struct {
	Attempts int
	Err      error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s): %v", ErrPathResolution, e.Attempts, e.Err)
}

func (e *PathResolutionError) Unwrap() []error {
	return []error{ErrPathResolution, e.Err}
}

// Resolve returns the absolute path of the running executable.
func Resolve(lookup Lookup) (ResolvedPath, error) {
	attempts := 1
	path, err := lookup.ExecutablePath(INITIAL_BUFFER_SIZE)

	var shortBuffer *ShortBufferError
	if errors.As(err, &shortBuffer) && shortBuffer.Required > INITIAL_BUFFER_SIZE {
		attempts++
		path, err = lookup.ExecutablePath(shortBuffer.Required)
	}
	if err != nil {
		return "", &PathResolutionError{Attempts: attempts, Err: err}
	}

	if path == "" || !filepath.IsAbs(path) {
		return "", &PathResolutionError{
			Attempts: attempts,
			Err:      fmt.Errorf("lookup returned a non absolute path %q", path),
		}
	}
	return ResolvedPath(filepath.Clean(path)), nil
}
