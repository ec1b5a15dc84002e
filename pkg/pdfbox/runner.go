package pdfbox

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/ElderResearch/go-pdfbox/internal/logx"
)

// runner launches the PDFBox app jar under the resolved java runtime.
type runner struct {
	java string
	jar  string
}

func (r runner) argv(spec *CommandSpec) []string {
	return append([]string{"-jar", r.jar}, spec.Args()...)
}

// start spawns `java -jar <jar> <Subcommand> [args...]` with combined
// stdout/stderr capture attached and returns as soon as the process is
// running. It does not wait for completion; dropping the returned handle is
// the fire-and-forget mode.
func (r runner) start(ctx context.Context, spec *CommandSpec) (*Proc, error) {
	args := r.argv(spec)
	logx.L().Debugw("running pdfbox", "java", r.java, "args", args)

	cmd := exec.CommandContext(ctx, r.java, args...)

	// Stdout and Stderr share one buffer; os/exec serializes writes to the
	// same writer, and readers only see it after the process exits.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, r.java, err)
	}

	p := &Proc{cmd: cmd, buf: &buf, done: make(chan struct{})}
	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

// Proc is a handle on a spawned PDFBox invocation.
//
// The facade never inspects exit codes: an operation that spawned
// successfully is not distinguished from one where the external tool printed
// an error and exited non-zero. Callers that need that distinction can call
// Wait or inspect Output themselves.
type Proc struct {
	cmd     *exec.Cmd
	buf     *bytes.Buffer
	done    chan struct{}
	waitErr error
}

// Output blocks until the process exits and returns the combined
// stdout/stderr text.
func (p *Proc) Output() string {
	<-p.done
	return p.buf.String()
}

// Wait blocks until the process exits and returns its wait error, if any.
func (p *Proc) Wait() error {
	<-p.done
	return p.waitErr
}

// Pid returns the OS process id of the spawned child.
func (p *Proc) Pid() int {
	return p.cmd.Process.Pid
}
