//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"unsafe"

	"iemem/process"

	"golang.org/x/sys/unix"
)

// process_vm_readv reads len(localBuf) bytes at remoteAddr of pid.
func process_vm_readv(
	pid process.ProcessID,
	localBuf []byte,
	remoteAddr process.ProcessMemoryAddress,
) (int, error) {
	localIov := unix.Iovec{
		Base: &localBuf[0],
		Len:  uint64(len(localBuf)),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(localBuf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),
		uintptr(unsafe.Pointer(&localIov)),
		uintptr(1),
		uintptr(unsafe.Pointer(&remoteIov)),
		uintptr(1),
		uintptr(0),
	)
	if errno != 0 {
		return 0, errno
	}
	return int(n), nil
}

// classifyReadError maps a syscall failure onto the channel error kinds.
// ESRCH means the process is gone; anything else is a failed read.
func classifyReadError(addr process.ProcessMemoryAddress, size process.ProcessMemorySize, err error) error {
	if errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("%w: %w", process.ErrTargetClosed, err)
	}
	return process.ReadFailed(addr, size, fmt.Errorf("process_vm_readv: %w", err))
}

func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := p.ReadMemoryInto(buf, addr, size); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadMemoryInto issues one process_vm_readv call. The mutex is only held
// for the memory map check, never across the syscall.
func (p *LinuxProcess) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if err := process.CheckCapacity(buf, size); err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, nil
	}

	pid, err := p.checkAddress(addr, size)
	if err != nil {
		return 0, err
	}

	n, err := process_vm_readv(pid, buf[:size], addr)
	if err != nil {
		return 0, classifyReadError(addr, size, err)
	}
	if n != int(size) {
		return 0, process.ReadFailed(addr, size, fmt.Errorf("partial read: %d of %d bytes", n, size))
	}
	return n, nil
}
