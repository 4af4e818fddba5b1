//go:build linux

package memory_map

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ReadMemoryMap reads and parses /proc/[pid]/maps in listing order
func ReadMemoryMap(pid int) ([]MemoryMapItem, error) {
	return ReadMemoryMapFile(filepath.Join("/proc", strconv.Itoa(pid), "maps"))
}

// ReadMemoryMapFile parses a maps listing from an arbitrary path.
func ReadMemoryMapFile(path string) ([]MemoryMapItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	memoryMap, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return memoryMap, nil
}
