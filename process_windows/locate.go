//go:build windows

package process_windows

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"iemem/layout"
	"iemem/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

// Locator finds running targets by executable image name.
type Locator struct {
	Executables []string

	log *logger.Logger
}

var _ process.Locator = (*Locator)(nil)

// NewLocator builds a locator for the executables of l.
func NewLocator(l *layout.Layout) *Locator {
	return &Locator{
		Executables: l.Executables,
		log:         logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "locator")),
	}
}

func (l *Locator) matches(exe string) bool {
	for _, name := range l.Executables {
		if strings.EqualFold(name, exe) {
			return true
		}
	}
	return false
}

// Candidates lists every process whose image is a recognized executable.
// Processes whose main module cannot be read are left out.
func (l *Locator) Candidates() ([]process.TargetProcess, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var results []process.TargetProcess
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		exe := windows.UTF16ToString(entry.ExeFile[:])
		if !l.matches(exe) {
			continue
		}

		target, err := mainModule(process.ProcessID(entry.ProcessID), exe)
		if err != nil {
			l.log.Debugln("Skipping pid", entry.ProcessID, ":", err)
			continue
		}
		results = append(results, *target)
	}
	if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return nil, fmt.Errorf("Process32Next: %w", err)
	}
	return results, nil
}

// mainModule describes pid using its first module, which is the executable image.
func mainModule(pid process.ProcessID, exe string) (*process.TargetProcess, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, uint32(pid))
	if err != nil {
		return nil, err
	}
	defer windows.CloseHandle(snapshot)

	var module windows.ModuleEntry32
	module.Size = uint32(unsafe.Sizeof(module))
	if err := windows.Module32First(snapshot, &module); err != nil {
		return nil, err
	}

	return &process.TargetProcess{
		PID:         pid,
		Exe:         windows.UTF16ToString(module.ExePath[:]),
		Name:        exe,
		BaseAddress: process.ProcessMemoryAddress(module.ModBaseAddr),
	}, nil
}

// Find returns the first recognized target. When none is running the error
// is ErrTargetMissing on a first attempt and ErrTargetClosed afterwards.
func (l *Locator) Find(firstOpen bool) (*process.TargetProcess, error) {
	candidates, err := l.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		if firstOpen {
			return nil, fmt.Errorf("%w: looking for %s", process.ErrTargetMissing, strings.Join(l.Executables, ", "))
		}
		return nil, process.ErrTargetClosed
	}

	target := candidates[0]
	l.log.Infoln("Found", target.Name, "pid", target.PID, "base", target.BaseAddress)
	return &target, nil
}

// Check reports ErrTargetClosed once t has exited.
func (l *Locator) Check(t *process.TargetProcess) error {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(t.PID))
	if err != nil {
		return process.ErrTargetClosed
	}
	defer windows.CloseHandle(handle)

	var code uint32
	if err := windows.GetExitCodeProcess(handle, &code); err != nil || code != stillActive {
		return process.ErrTargetClosed
	}
	return nil
}
