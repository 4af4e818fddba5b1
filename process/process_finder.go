package process

// Locator finds the target process
type Locator interface {
	// Find scans for a recognized target. When nothing matches it returns
	// ErrTargetMissing if firstOpen is set, ErrTargetClosed otherwise.
	Find(firstOpen bool) (*TargetProcess, error)

	// Check returns ErrTargetClosed when t no longer exists
	Check(t *TargetProcess) error
}
