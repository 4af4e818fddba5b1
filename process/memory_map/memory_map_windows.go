//go:build windows

package memory_map

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// PermsFromProtect renders a page protection the way /proc/<pid>/maps does.
func PermsFromProtect(protect uint32) string {
	if protect&(windows.PAGE_GUARD|windows.PAGE_NOACCESS) != 0 {
		return "---p"
	}
	switch protect & 0xff {
	case windows.PAGE_READONLY:
		return "r--p"
	case windows.PAGE_READWRITE, windows.PAGE_WRITECOPY:
		return "rw-p"
	case windows.PAGE_EXECUTE:
		return "--xp"
	case windows.PAGE_EXECUTE_READ:
		return "r-xp"
	case windows.PAGE_EXECUTE_READWRITE, windows.PAGE_EXECUTE_WRITECOPY:
		return "rwxp"
	}
	return "---p"
}

// ReadMemoryMap lists the committed regions of the process behind handle in
// address order. The handle needs PROCESS_QUERY_LIMITED_INFORMATION.
func ReadMemoryMap(handle windows.Handle) []MemoryMapItem {
	var mm []MemoryMapItem
	var info windows.MemoryBasicInformation
	for addr := uintptr(0); ; {
		// the walk ends with ERROR_INVALID_PARAMETER past the last region
		if err := windows.VirtualQueryEx(handle, addr, &info, unsafe.Sizeof(info)); err != nil {
			break
		}
		if info.State == windows.MEM_COMMIT {
			mm = append(mm, MemoryMapItem{
				Address: uint64(info.BaseAddress),
				Size:    uint(info.RegionSize),
				Perms:   PermsFromProtect(info.Protect),
			})
		}
		next := info.BaseAddress + info.RegionSize
		if next <= addr {
			break
		}
		addr = next
	}
	return mm
}
