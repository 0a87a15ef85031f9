// Package elevate relaunches a program with administrator privileges.
//
// Arguments after the target are joined with single spaces and passed on
// unquoted, so arguments containing spaces or shell characters are split
// or interpreted again by the receiving side.
package elevate

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrElevationDeclined = errors.New("administrator elevation declined")
	ErrUnsupported       = errors.New("elevation not supported on this platform")
)

var USAGE = [2]string{
	"Usage: elevate <program> [arguments...]",
	"Runs <program> with administrator privileges.",
}

// Request is a relaunch of Target with an already joined argument string.
type Request struct {
	Target    string
	Arguments string
}

type Elevator interface {
	Elevate(request Request) error
}

// Parse builds a Request from command line arguments. It returns false
// when no target is given.
func Parse(arguments []string) (request Request, ok bool) {
	if len(arguments) == 0 {
		return
	}
	return Request{
		Target:    arguments[0],
		Arguments: strings.Join(arguments[1:], " "),
	}, true
}

// Run prints the usage when no arguments are given, otherwise it asks the
// elevator to relaunch the requested program.
func Run(arguments []string, output io.Writer, elevator Elevator) (err error) {
	request, ok := Parse(arguments)
	if !ok {
		for _, line := range USAGE {
			if _, err = fmt.Fprintln(output, line); err != nil {
				return
			}
		}
		return
	}
	return elevator.Elevate(request)
}

// CommandLine is the request as a single command string for shells.
func (request Request) CommandLine() string {
	if request.Arguments == "" {
		return request.Target
	}
	return request.Target + " " + request.Arguments
}

// appleScript wraps the command line in an osascript program asking for
// administrator privileges.
func appleScript(request Request) string {
	escaper := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `do shell script "` + escaper.Replace(request.CommandLine()) + `" with administrator privileges`
}
