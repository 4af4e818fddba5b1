package process

import (
	"fmt"
)

// ProcessMemoryAddress represents a memory address within a process
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) ToString() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

func (pma ProcessMemoryAddress) String() string {
	return pma.ToString()
}

// Add returns the address delta bytes away. Wraps like the target's own pointer arithmetic.
func (pma ProcessMemoryAddress) Add(delta int64) ProcessMemoryAddress {
	return ProcessMemoryAddress(uint64(pma) + uint64(delta))
}

// ProcessMemorySize represents a size of memory region
type ProcessMemorySize uint

func (pms ProcessMemorySize) ToString() string {
	return fmt.Sprintf("%d bytes", uint(pms))
}

// PointerSize is the width of a pointer in the target (x86-64).
const PointerSize ProcessMemorySize = 8
