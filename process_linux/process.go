//go:build linux

// Package process_linux reads a live target through /proc and
// process_vm_readv.
package process_linux

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"iemem/process"
	"iemem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// LinuxProcess is the live memory channel to one located target.
type LinuxProcess struct {
	target *process.TargetProcess
	log    *logger.Logger
	mm     []memory_map.MemoryMapItem // sorted
	mu     sync.Mutex
}

var _ process.Channel = (*LinuxProcess)(nil)
var _ process.Liveness = (*LinuxProcess)(nil)
var _ process.Attached = (*LinuxProcess)(nil)

// Open attaches to target and loads its memory map.
func Open(target *process.TargetProcess) (*LinuxProcess, error) {
	if target == nil || target.PID <= 0 {
		return nil, process.ErrProcessNotOpen
	}

	p := &LinuxProcess{
		target: target,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", target.PID))),
	}
	if err := p.UpdateMemoryMap(); err != nil {
		return nil, err
	}

	p.log.Infoln("Process opened:", target.Name, "base", target.BaseAddress)
	return p, nil
}

func (p *LinuxProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.target == nil {
		return nil
	}
	p.target = nil
	p.mm = nil
	p.log.Infoln("Process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
	return nil
}

// Target returns the description the process was opened with
func (p *LinuxProcess) Target() *process.TargetProcess {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

func (p *LinuxProcess) PID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.target == nil {
		return 0
	}
	return p.target.PID
}

// Exists reports whether the target is still running.
func (p *LinuxProcess) Exists() bool {
	return p.Target().Exists()
}

// UpdateMemoryMap rereads <target>/maps.
func (p *LinuxProcess) UpdateMemoryMap() error {
	target := p.Target()
	if target == nil {
		return process.ErrProcessNotOpen
	}

	mm, err := memory_map.ReadMemoryMapFile(filepath.Join(target.Path, "maps"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: pid %d", process.ErrTargetClosed, target.PID)
		}
		return fmt.Errorf("failed to read memory map: %w", err)
	}
	memory_map.Sort(mm)

	p.mu.Lock()
	p.mm = mm
	p.mu.Unlock()
	return nil
}

// GetMemoryMap returns a copy of the cached, sorted memory map
func (p *LinuxProcess) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.target == nil {
		return nil, process.ErrProcessNotOpen
	}
	result := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(result, p.mm)
	return result, nil
}

func (p *LinuxProcess) readableLocked(addr process.ProcessMemoryAddress) bool {
	item := memory_map.Lookup(uint64(addr), p.mm)
	return item != nil && item.IsReadable()
}

// checkAddress looks addr up in the cached map, refreshing it once on a
// miss since the target may have mapped memory since the last refresh.
func (p *LinuxProcess) checkAddress(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (process.ProcessID, error) {
	p.mu.Lock()
	if p.target == nil {
		p.mu.Unlock()
		return 0, process.ErrProcessNotOpen
	}
	pid := p.target.PID
	ok := p.readableLocked(addr)
	p.mu.Unlock()
	if ok {
		return pid, nil
	}

	if err := p.UpdateMemoryMap(); err != nil {
		return 0, err
	}

	p.mu.Lock()
	ok = p.readableLocked(addr)
	p.mu.Unlock()
	if !ok {
		return 0, process.ReadFailed(addr, size, process.ErrAddressNotMapped)
	}
	return pid, nil
}
