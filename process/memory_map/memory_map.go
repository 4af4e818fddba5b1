package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// MemoryMapItem represents a memory region in a process's address space
type MemoryMapItem struct {
	Address uint64 `json:"Address"` // The starting address of the memory region
	Size    uint   `json:"Size"`    // The size of the memory region in bytes
	Perms   string `json:"Perms"`   // Permissions (e.g., "r-xp" for read, execute, private)
	Path    string `json:"Path,omitempty"`
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s, Path: %s", mmItem.Address, mmItem.Size, mmItem.Perms, mmItem.Path)
}

func (mmItem MemoryMapItem) End() uint64 {
	return mmItem.Address + uint64(mmItem.Size)
}

// Contains reports whether [addr, addr+size) lies entirely inside the region.
func (mmItem MemoryMapItem) Contains(addr uint64, size uint64) bool {
	return addr >= mmItem.Address && addr <= mmItem.End() && size <= mmItem.End()-addr
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return len(mmItem.Perms) > 0 && mmItem.Perms[0] == 'r'
}

func (mmItem MemoryMapItem) IsWritable() bool {
	return len(mmItem.Perms) > 1 && mmItem.Perms[1] == 'w'
}

func (mmItem MemoryMapItem) IsExecutable() bool {
	return len(mmItem.Perms) > 2 && mmItem.Perms[2] == 'x'
}

// Parse reads the /proc/<pid>/maps text format, one region per line,
// keeping line order. Lines that do not parse are skipped.
func Parse(r io.Reader) ([]MemoryMapItem, error) {
	var memoryMap []MemoryMapItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		item, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		memoryMap = append(memoryMap, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return memoryMap, nil
}

func parseLine(line string) (MemoryMapItem, bool) {
	// 00400000-0040b000 r-xp 00000000 08:01 1234   /usr/bin/foo
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return MemoryMapItem{}, false
	}

	addrRange := strings.Split(fields[0], "-")
	if len(addrRange) != 2 {
		return MemoryMapItem{}, false
	}

	startAddr, err := strconv.ParseUint(addrRange[0], 16, 64)
	if err != nil {
		return MemoryMapItem{}, false
	}

	endAddr, err := strconv.ParseUint(addrRange[1], 16, 64)
	if err != nil || endAddr < startAddr {
		return MemoryMapItem{}, false
	}

	item := MemoryMapItem{
		Address: startAddr,
		Size:    uint(endAddr - startAddr),
		Perms:   fields[1],
	}
	if len(fields) >= 6 {
		item.Path = strings.Join(fields[5:], " ")
	}
	return item, true
}

// Format writes memoryMap in the /proc/<pid>/maps text format Parse reads.
// Offset, device and inode are not tracked and are written as zero.
func Format(w io.Writer, memoryMap []MemoryMapItem) error {
	for _, item := range memoryMap {
		line := fmt.Sprintf("%x-%x %s 00000000 00:00 0", item.Address, item.End(), item.Perms)
		if item.Path != "" {
			line += " " + item.Path
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// BaseAddress returns the start of the region on the given zero based line
// of the listing. The main executable image is found by position, not by name.
func BaseAddress(memoryMap []MemoryMapItem, line int) (uint64, error) {
	if line < 0 || line >= len(memoryMap) {
		return 0, fmt.Errorf("memory map has %d lines, base address line %d missing", len(memoryMap), line)
	}
	if memoryMap[line].Address == 0 {
		return 0, fmt.Errorf("memory map line %d has a null base address", line)
	}
	return memoryMap[line].Address, nil
}

// Sort orders regions by address, Lookup depends on it.
func Sort(memoryMap []MemoryMapItem) {
	sort.Slice(memoryMap, func(i, j int) bool {
		return memoryMap[i].Address < memoryMap[j].Address
	})
}

// IsValidAddress checks if an address is within a mapped region
func IsValidAddress(addr uint64, memoryMap []MemoryMapItem) bool {
	return Lookup(addr, memoryMap) != nil
}

// Lookup returns the region containing addr. memoryMap must be sorted.
func Lookup(addr uint64, memoryMap []MemoryMapItem) *MemoryMapItem {
	i := sort.Search(len(memoryMap), func(i int) bool {
		return memoryMap[i].End() > addr
	})
	if i < len(memoryMap) && memoryMap[i].Address <= addr {
		return &memoryMap[i]
	}

	return nil
}
