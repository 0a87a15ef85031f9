//go:build windows

package cliprelay

import (
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// ShellActivator uses the WScript.Shell automation object.
type ShellActivator struct {
	shell *ole.IDispatch
}

func NewActivator() (activator WindowActivator, err error) {
	// COM is thread-bound, the thread is released by Close
	runtime.LockOSThread()
	if err = ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); ok {
			code := oleErr.Code()
			if code != 0 && code != 1 { // S_OK=0, S_FALSE=1
				runtime.UnlockOSThread()
				return nil, fmt.Errorf("COM initialization failed: %s", oleErrorString(err))
			}
		}
	}
	err = nil
	var shellObject *ole.IUnknown
	if shellObject, err = oleutil.CreateObject("WScript.Shell"); err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("cannot create WScript.Shell object: %s", oleErrorString(err))
	}
	defer shellObject.Release()

	var shell *ole.IDispatch
	if shell, err = shellObject.QueryInterface(ole.IID_IDispatch); err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("cannot get shell interface: %s", oleErrorString(err))
	}
	return &ShellActivator{shell: shell}, nil
}

func (activator *ShellActivator) Activate(title string) error {
	result, err := oleutil.CallMethod(activator.shell, "AppActivate", title)
	if err != nil {
		return fmt.Errorf("AppActivate failed: %s", oleErrorString(err))
	}
	defer result.Clear()
	if activated, ok := result.Value().(bool); ok && !activated {
		return ErrWindowNotFound
	}
	return nil
}

func (activator *ShellActivator) SendKeys(keys string) error {
	result, err := oleutil.CallMethod(activator.shell, "SendKeys", keys)
	if err != nil {
		return fmt.Errorf("SendKeys failed: %s", oleErrorString(err))
	}
	result.Clear()
	return nil
}

func (activator *ShellActivator) Close() {
	activator.shell.Release()
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

func oleErrorString(err error) string {
	if oleErr, ok := err.(*ole.OleError); ok {
		return fmt.Sprintf("%s (HRESULT: 0x%08X)", oleErr.Error(), uint32(oleErr.Code()))
	}
	return err.Error()
}
