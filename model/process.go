package model

import "fmt"

// Process is a trackable unit of work. Values are immutable once created;
// two processes are equal when both PID and Priority match.
type Process struct {
	PID      string   `json:"pid" yaml:"pid"`
	Priority Priority `json:"priority" yaml:"priority"`
}

// NewProcess creates a process
func NewProcess(pid string, priority Priority) Process {
	return Process{PID: pid, Priority: priority}
}

// Validate checks that the process can be tracked
func (p Process) Validate() error {
	if p.PID == "" {
		return fmt.Errorf("process pid was empty")
	}
	if !p.Priority.IsValid() {
		return fmt.Errorf("process %v: invalid priority %d", p.PID, uint8(p.Priority))
	}
	return nil
}

func (p Process) String() string {
	return p.PID + "(" + p.Priority.String() + ")"
}
