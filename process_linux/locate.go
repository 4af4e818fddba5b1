//go:build linux

package process_linux

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"iemem/layout"
	"iemem/process"
	"iemem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/exp/slices"
)

// DefaultRoot is where process directories are listed
const DefaultRoot = "/proc"

// Locator finds running targets by the name in <root>/<pid>/comm.
type Locator struct {
	Root       string
	Identities []string
	BaseLine   int // zero based line of <pid>/maps holding the module base

	log *logger.Logger
}

var _ process.Locator = (*Locator)(nil)

// NewLocator builds a locator for the identities and base line of l.
func NewLocator(l *layout.Layout) *Locator {
	return &Locator{
		Root:       DefaultRoot,
		Identities: slices.Clone(l.Identities),
		BaseLine:   l.BaseLine,
		log:        logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "locator")),
	}
}

// Candidates lists every process whose name is a recognized identity, in
// pid directory order. Processes that vanish while being inspected, or whose
// memory map cannot be read, are left out.
func (l *Locator) Candidates() ([]process.TargetProcess, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.Root, err)
	}

	var results []process.TargetProcess
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		target, err := l.inspect(process.ProcessID(pid))
		if err != nil {
			l.log.Debugln("Skipping pid", pid, ":", err)
			continue
		}
		if target != nil {
			results = append(results, *target)
		}
	}
	return results, nil
}

// inspect returns nil, nil for processes that are not a target.
func (l *Locator) inspect(pid process.ProcessID) (*process.TargetProcess, error) {
	procPath := filepath.Join(l.Root, strconv.Itoa(int(pid)))

	comm, err := os.ReadFile(filepath.Join(procPath, "comm"))
	if err != nil {
		return nil, err
	}
	name := strings.TrimRight(string(comm), "\n")
	if !slices.Contains(l.Identities, name) {
		return nil, nil
	}

	mm, err := memory_map.ReadMemoryMapFile(filepath.Join(procPath, "maps"))
	if err != nil {
		return nil, err
	}
	base, err := memory_map.BaseAddress(mm, l.BaseLine)
	if err != nil {
		return nil, err
	}

	// exe is often unreadable without ptrace rights; it is informational
	exe, _ := os.Readlink(filepath.Join(procPath, "exe"))

	return &process.TargetProcess{
		PID:         pid,
		Path:        procPath,
		Exe:         exe,
		Name:        name,
		BaseAddress: process.ProcessMemoryAddress(base),
	}, nil
}

// Find returns the first recognized target. When none is running the error
// is ErrTargetMissing on a first attempt and ErrTargetClosed afterwards, so
// callers can tell "never started" from "went away".
func (l *Locator) Find(firstOpen bool) (*process.TargetProcess, error) {
	candidates, err := l.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		if firstOpen {
			return nil, fmt.Errorf("%w: looking for %s", process.ErrTargetMissing, strings.Join(l.Identities, ", "))
		}
		return nil, process.ErrTargetClosed
	}

	target := candidates[0]
	l.log.Infoln("Found", target.Name, "pid", target.PID, "base", target.BaseAddress)
	return &target, nil
}

// Check reports ErrTargetClosed once t's process directory is gone.
func (l *Locator) Check(t *process.TargetProcess) error {
	if !t.Exists() {
		return process.ErrTargetClosed
	}
	return nil
}
