package process

import (
	"os"
)

// ProcessID represents a unique identifier for a process
type ProcessID int

// TargetProcess is a point in time description of a located target.
// It is never mutated; once the process exits reads through it fail.
type TargetProcess struct {
	PID         ProcessID            `json:"pid"`
	Path        string               `json:"path"` // /proc/<pid>
	Exe         string               `json:"exe"`
	Name        string               `json:"name"`
	BaseAddress ProcessMemoryAddress `json:"base_address"`
}

// Exists reports whether the target's backing path is still present.
func (t *TargetProcess) Exists() bool {
	if t == nil || t.Path == "" {
		return false
	}
	_, err := os.Stat(t.Path)
	return err == nil
}
