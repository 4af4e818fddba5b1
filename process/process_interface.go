package process

// Channel is read access to the memory of exactly one target process.
//
// Reads are all or nothing: either the full size is returned or an error
// wrapping ErrMemoryReadFailed (or ErrTargetClosed) is. Implementations never
// return a short buffer with a nil error.
type Channel interface {
	// ReadMemory reads size bytes starting at addr
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// ReadMemoryInto reads size bytes at addr into buf and returns the count read.
	// A buf shorter than size fails with ErrInsufficientCapacity before any read.
	ReadMemoryInto(buf []byte, addr ProcessMemoryAddress, size ProcessMemorySize) (int, error)
}

// Liveness is implemented by channels that can tell whether their target still exists.
type Liveness interface {
	Exists() bool
}

// Attached is implemented by channels bound to a located target. Target is
// nil once the host has closed the channel.
type Attached interface {
	Target() *TargetProcess
}

// CheckCapacity is the shared ReadMemoryInto precondition.
func CheckCapacity(buf []byte, size ProcessMemorySize) error {
	if len(buf) < int(size) {
		return &InsufficientCapacityError{Expected: size, Actual: len(buf)}
	}
	return nil
}
