// Package process defines the address types, the memory channel contract and
// the error kinds shared by the live and recorded target readers.
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrTargetMissing is returned when no running process matches a recognized target identity.
	ErrTargetMissing = errors.New("target process not found")

	// ErrTargetClosed is returned when a previously located target has exited.
	ErrTargetClosed = errors.New("target process closed")

	// ErrMemoryReadFailed is returned for any channel level read failure: denied, short or unmapped.
	ErrMemoryReadFailed = errors.New("memory read failed")

	ErrInsufficientCapacity = errors.New("insufficient buffer capacity")
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrInvalidString        = errors.New("invalid string")
)

// InsufficientCapacityError reports a destination buffer shorter than the requested read.
type InsufficientCapacityError struct {
	Expected ProcessMemorySize
	Actual   int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, buffer holds %d", ErrInsufficientCapacity, e.Expected, e.Actual)
}

func (e *InsufficientCapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// InvalidEnumValueError is returned where an identifier must be recognized for decoding to continue.
type InvalidEnumValueError struct {
	Enum  string
	Value uint64
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%v: %s has no variant 0x%X", ErrInvalidEnumValue, e.Enum, e.Value)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// InvalidStringError carries the raw bytes that could not be converted to text.
type InvalidStringError struct {
	Msg   string
	Bytes []byte
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("%v: %s (% x)", ErrInvalidString, e.Msg, e.Bytes)
}

func (e *InvalidStringError) Is(target error) bool {
	return target == ErrInvalidString
}

// ReadFailed wraps cause as a channel level read failure at addr.
func ReadFailed(addr ProcessMemoryAddress, size ProcessMemorySize, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w at %s (%d bytes)", ErrMemoryReadFailed, addr, size)
	}
	return fmt.Errorf("%w at %s (%d bytes): %w", ErrMemoryReadFailed, addr, size, cause)
}
