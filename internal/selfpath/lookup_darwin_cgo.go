//go:build darwin && cgo

package selfpath

/*
#include <mach-o/dyld.h>
#include <stdint.h>
*/
import "C"

import (
	"bytes"
	"unsafe"
)

type systemLookup struct{}

// System reads the path through _NSGetExecutablePath, which reports the
// required buffer size when the one it gets is too small.
var System Lookup = systemLookup{}

func (systemLookup) ExecutablePath(bufferSize int) (string, error) {
	buffer := make([]byte, bufferSize)
	size := C.uint32_t(bufferSize)
	if rc := C._NSGetExecutablePath((*C.char)(unsafe.Pointer(&buffer[0])), &size); rc != 0 {
		return "", &ShortBufferError{Size: bufferSize, Required: int(size)}
	}
	if end := bytes.IndexByte(buffer, 0); end >= 0 {
		buffer = buffer[:end]
	}
	return string(buffer), nil
}
