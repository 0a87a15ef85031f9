//go:build windows

package elevate

import (
	"errors"

	"golang.org/x/sys/windows"
)

type shellElevator struct{}

// System relaunches through ShellExecute with the runas verb, which shows
// the UAC prompt.
var System Elevator = shellElevator{}

func (shellElevator) Elevate(request Request) error {
	var arguments *uint16
	if request.Arguments != "" {
		arguments = windows.StringToUTF16Ptr(request.Arguments)
	}
	err := windows.ShellExecute(0,
		windows.StringToUTF16Ptr("runas"),
		windows.StringToUTF16Ptr(request.Target),
		arguments,
		nil,
		windows.SW_SHOWNORMAL,
	)
	if errors.Is(err, windows.ERROR_CANCELLED) {
		return ErrElevationDeclined
	}
	return err
}
