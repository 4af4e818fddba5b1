//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"iemem/game"
	"iemem/layout"
	"iemem/process"
	"iemem/process_blob"
	"iemem/remote"

	"golang.org/x/sys/unix"
)

// package level so they live at a fixed address for the whole test
var (
	selfMarker    = []byte("infinity engine memory channel")
	captureMarker = []byte("captured marker 0123456789")
)

func openSelf(t *testing.T) *LinuxProcess {
	t.Helper()
	pid := os.Getpid()
	p, err := Open(&process.TargetProcess{
		PID:  process.ProcessID(pid),
		Path: fmt.Sprintf("/proc/%d", pid),
		Name: "self",
	})
	if err != nil {
		t.Fatalf("Open(self): %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

// skipIfDenied skips when the sandbox forbids process_vm_readv on ourselves.
func skipIfDenied(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, unix.EPERM) || errors.Is(err, unix.ENOSYS) {
		t.Skipf("process_vm_readv unavailable: %v", err)
	}
}

func TestReadSelf(t *testing.T) {
	p := openSelf(t)

	buf := selfMarker
	addr := process.ProcessMemoryAddress(uintptr(unsafe.Pointer(&buf[0])))

	got, err := p.ReadMemory(addr, process.ProcessMemorySize(len(buf)))
	skipIfDenied(t, err)
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	if string(got) != string(buf) {
		t.Errorf("ReadMemory = %q, want %q", got, buf)
	}

	into := make([]byte, 6)
	n, err := p.ReadMemoryInto(into, addr+9, 6)
	if err != nil || n != 6 || string(into) != "engine" {
		t.Errorf("ReadMemoryInto = %d %q %v", n, into, err)
	}

	if _, err := p.ReadMemoryInto(make([]byte, 2), addr, 6); !errors.Is(err, process.ErrInsufficientCapacity) {
		t.Errorf("short buffer = %v, want ErrInsufficientCapacity", err)
	}
}

func TestReadSelfUnmapped(t *testing.T) {
	p := openSelf(t)

	_, err := p.ReadMemory(0x10, 8)
	if !errors.Is(err, process.ErrMemoryReadFailed) || !errors.Is(err, process.ErrAddressNotMapped) {
		t.Errorf("ReadMemory(0x10) = %v, want ErrMemoryReadFailed wrapping ErrAddressNotMapped", err)
	}
}

func TestReadExitedTarget(t *testing.T) {
	dir := t.TempDir()
	maps := "7f0000000000-7f0000001000 rw-p 00000000 00:00 0\n"
	if err := os.WriteFile(filepath.Join(dir, "maps"), []byte(maps), 0o644); err != nil {
		t.Fatal(err)
	}

	// a pid above any pid_max
	p, err := Open(&process.TargetProcess{PID: 1 << 30, Path: dir, Name: "gone"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	_, err = p.ReadMemory(0x7f0000000010, 4)
	skipIfDenied(t, err)
	if !errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("ReadMemory = %v, want ErrTargetClosed", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if p.Exists() {
		t.Error("Exists after the process directory is gone")
	}
	if err := p.UpdateMemoryMap(); !errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("UpdateMemoryMap = %v, want ErrTargetClosed", err)
	}
}

func TestClosedProcess(t *testing.T) {
	p := openSelf(t)
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ReadMemory(0x1000, 4); !errors.Is(err, process.ErrProcessNotOpen) {
		t.Errorf("ReadMemory after Close = %v, want ErrProcessNotOpen", err)
	}

	l, err := layout.Builtin(layout.Default)
	if err != nil {
		t.Fatal(err)
	}
	_, err = game.ReadEntityList(p, l, remote.New[remote.Void](0x400000))
	if !errors.Is(err, process.ErrProcessNotOpen) || errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("ReadEntityList after Close = %v, want ErrProcessNotOpen", err)
	}
	if _, err := Open(nil); !errors.Is(err, process.ErrProcessNotOpen) {
		t.Errorf("Open(nil) = %v", err)
	}
}

func TestClassifyReadError(t *testing.T) {
	if err := classifyReadError(0x1000, 8, unix.ESRCH); !errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("ESRCH -> %v", err)
	}
	for _, errno := range []unix.Errno{unix.EFAULT, unix.EPERM, unix.EIO} {
		err := classifyReadError(0x1000, 8, errno)
		if !errors.Is(err, process.ErrMemoryReadFailed) || errors.Is(err, process.ErrTargetClosed) {
			t.Errorf("%v -> %v", errno, err)
		}
	}
}

func TestCaptureSelf(t *testing.T) {
	p := openSelf(t)

	buf := captureMarker
	addr := process.ProcessMemoryAddress(uintptr(unsafe.Pointer(&buf[0])))
	if _, err := p.ReadMemory(addr, 1); err != nil {
		skipIfDenied(t, err)
	}

	dump, err := process_blob.Capture(p, process_blob.DefaultMaxRegion)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if dump.PID != p.PID() || len(dump.Blobs) == 0 {
		t.Fatalf("dump of pid %d holds %d regions", dump.PID, len(dump.Blobs))
	}

	got, err := dump.ReadMemory(addr, process.ProcessMemorySize(len(buf)))
	if err != nil {
		t.Fatalf("dump.ReadMemory: %v", err)
	}
	if string(got) != string(buf) {
		t.Errorf("captured %q, want %q", got, buf)
	}
}
