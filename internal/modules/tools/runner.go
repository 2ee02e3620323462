package tools

import (
	"os/exec"
)

// Process is a handle to a launched tool process
type Process interface {
	PID() int
	Wait() error
}

// Runner starts tool commands. The default implementation spawns real
// processes; tests substitute their own.
type Runner interface {
	Start(name string, args ...string) (Process, error)
}

type execRunner struct{}

func (execRunner) Start(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) PID() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}
