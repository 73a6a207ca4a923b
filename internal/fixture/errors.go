package fixture

import "fmt"

// VersionError reports a registry entry whose wire version the protocol
// library cannot derive a capability set for. This is a defect in the
// static registry, not a runtime condition.
type VersionError struct {
	Label string
	Err   error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("version %s: %v", e.Label, e.Err)
}

func (e *VersionError) Unwrap() error { return e.Err }

// EncodeError reports a generator that failed to produce a buffer for
// one (version, message) pair.
type EncodeError struct {
	Version string
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s/%s: %v", e.Version, e.Message, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// WriteError reports a fixture that could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
