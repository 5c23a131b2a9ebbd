package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var CommandContext = exec.CommandContext

type callError struct {
	args   []string
	stderr string
	err    error
}

func (e *callError) Error() string {
	return fmt.Sprintf("exec: git %q failed: %s (%v)", e.args, e.stderr, e.err)
}

func (e *callError) Unwrap() error { return e.err }

func (g *Git) call(ctx context.Context, args []string) ([]byte, error) {
	g.log.Debug("+ git " + ArgsString(args))
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = g.wd

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	err := cmd.Run()
	if err != nil {
		return nil, &callError{args: args, stderr: eb.String(), err: err}
	}
	return ob.Bytes(), err
}

func isUnknownRevision(err error) bool {
	var ce *callError
	if !errors.As(err, &ce) {
		return false
	}
	return strings.Contains(ce.stderr, "unknown revision") ||
		strings.Contains(ce.stderr, "bad revision") ||
		strings.Contains(ce.stderr, "ambiguous argument")
}

// ArgsString returns a string suitable for copy/paste into the terminal.
func ArgsString(args []string) string {
	b := &bytes.Buffer{}

	for i, arg := range args {
		if strings.Contains(arg, " ") {
			b.WriteString(`"`)
			b.WriteString(arg)
			b.WriteString(`"`)
		} else {
			b.WriteString(arg)
		}

		if i < len(args)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
