// Package consent decides which analytics commands to queue from a stored
// opt-in flag. It never talks to an analytics service itself.
package consent

import (
	"fmt"
	"strconv"
)

// Command is one analytics queue entry: a method name followed by its arguments.
type Command []string

var (
	OPTED_IN_COMMANDS = []Command{
		{"setConsentGiven"},
		{"trackPageView"},
		{"enableLinkTracking"},
	}
	OPTED_OUT_COMMANDS = []Command{
		{"forgetConsentGiven"},
		{"optUserOut"},
	}
)

// Store reads flags from wherever consent is kept.
type Store interface {
	Value(flag string) (value string, found bool, err error)
}

type Queue interface {
	Push(command Command) error
}

// Truthy reports whether a stored flag value counts as set. Boolean
// spellings are parsed; any other non empty value is true.
func Truthy(value string, found bool) bool {
	if !found || value == "" {
		return false
	}
	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed
	}
	return true
}

// Apply pushes the opted in or the opted out command sequence depending on
// the flag and returns which one was chosen.
func Apply(store Store, queue Queue, flag string) (granted bool, err error) {
	var (
		value string
		found bool
	)
	if value, found, err = store.Value(flag); err != nil {
		return false, fmt.Errorf("cannot read consent flag %s: %w", flag, err)
	}
	granted = Truthy(value, found)

	commands := OPTED_OUT_COMMANDS
	if granted {
		commands = OPTED_IN_COMMANDS
	}
	for _, command := range commands {
		if err = queue.Push(command); err != nil {
			return granted, fmt.Errorf("cannot push %v: %w", command, err)
		}
	}
	return
}
