// Package cliprelay brings a window to the foreground and types a fixed key
// sequence into it, typically a paste shortcut.
package cliprelay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnsupported    = errors.New("window activation not supported on this platform")
	ErrWindowNotFound = errors.New("window not found")
)

// WindowActivator drives the desktop session.
type WindowActivator interface {
	Activate(title string) error
	SendKeys(keys string) error
}

type Relay struct {
	Window    string
	Keys      string
	Activator WindowActivator
}

func (relay *Relay) Run() (err error) {
	logrus.Debugf("Activating window %q", relay.Window)
	if err = relay.Activator.Activate(relay.Window); err != nil {
		return fmt.Errorf("cannot activate %q: %w", relay.Window, err)
	}
	logrus.Debugf("Sending keys %q", relay.Keys)
	if err = relay.Activator.SendKeys(relay.Keys); err != nil {
		return fmt.Errorf("cannot send keys to %q: %w", relay.Window, err)
	}
	return
}
