//go:build windows

// Package process_windows reads a live target through ReadProcessMemory.
package process_windows

import (
	"errors"
	"fmt"
	"sync"

	"iemem/process"
	"iemem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

const (
	accessRights = windows.PROCESS_VM_READ | windows.PROCESS_QUERY_LIMITED_INFORMATION
	stillActive  = 259
)

// WindowsProcess is the live memory channel to one located target.
type WindowsProcess struct {
	target *process.TargetProcess
	handle windows.Handle
	log    *logger.Logger
	mm     []memory_map.MemoryMapItem // sorted
	mu     sync.Mutex
}

var _ process.Channel = (*WindowsProcess)(nil)
var _ process.Liveness = (*WindowsProcess)(nil)
var _ process.Attached = (*WindowsProcess)(nil)

// Open attaches to target and loads its memory map.
func Open(target *process.TargetProcess) (*WindowsProcess, error) {
	if target == nil || target.PID <= 0 {
		return nil, process.ErrProcessNotOpen
	}

	handle, err := windows.OpenProcess(accessRights, false, uint32(target.PID))
	if err != nil {
		return nil, fmt.Errorf("OpenProcess %d: %w", target.PID, err)
	}

	p := &WindowsProcess{
		target: target,
		handle: handle,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", target.PID))),
	}
	if err := p.UpdateMemoryMap(); err != nil {
		windows.CloseHandle(handle)
		return nil, err
	}

	p.log.Infoln("Process opened:", target.Name, "base", target.BaseAddress)
	return p, nil
}

func (p *WindowsProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(p.handle)
	p.handle = 0
	p.target = nil
	p.mm = nil
	p.log.Infoln("Process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
	if err != nil {
		return fmt.Errorf("CloseHandle: %w", err)
	}
	return nil
}

// Target returns the description the process was opened with
func (p *WindowsProcess) Target() *process.TargetProcess {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

func (p *WindowsProcess) PID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.target == nil {
		return 0
	}
	return p.target.PID
}

func (p *WindowsProcess) openHandle() (windows.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == 0 {
		return 0, process.ErrProcessNotOpen
	}
	return p.handle, nil
}

// Exists reports whether the target is still running.
func (p *WindowsProcess) Exists() bool {
	handle, err := p.openHandle()
	if err != nil {
		return false
	}
	var code uint32
	if err := windows.GetExitCodeProcess(handle, &code); err != nil {
		return false
	}
	return code == stillActive
}

// UpdateMemoryMap walks the committed regions of the target with VirtualQueryEx.
func (p *WindowsProcess) UpdateMemoryMap() error {
	handle, err := p.openHandle()
	if err != nil {
		return err
	}

	mm := memory_map.ReadMemoryMap(handle)
	if len(mm) == 0 && !p.Exists() {
		return fmt.Errorf("%w: pid %d", process.ErrTargetClosed, p.PID())
	}
	memory_map.Sort(mm)

	p.mu.Lock()
	p.mm = mm
	p.mu.Unlock()
	return nil
}

// GetMemoryMap returns a copy of the cached, sorted memory map
func (p *WindowsProcess) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil, process.ErrProcessNotOpen
	}
	result := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(result, p.mm)
	return result, nil
}

func (p *WindowsProcess) classifyReadError(addr process.ProcessMemoryAddress, size process.ProcessMemorySize, err error) error {
	if !p.Exists() {
		return fmt.Errorf("%w: reading 0x%x", process.ErrTargetClosed, uint64(addr))
	}
	return process.ReadFailed(addr, size, err)
}

func (p *WindowsProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := p.ReadMemoryInto(buf, addr, size); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *WindowsProcess) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if err := process.CheckCapacity(buf, size); err != nil {
		return 0, err
	}
	handle, err := p.openHandle()
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, nil
	}

	var read uintptr
	if err := windows.ReadProcessMemory(handle, uintptr(addr), &buf[0], uintptr(size), &read); err != nil {
		return 0, p.classifyReadError(addr, size, err)
	}
	if read != uintptr(size) {
		return 0, p.classifyReadError(addr, size, errors.New("short read"))
	}
	return int(read), nil
}
