package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapVersionError wraps a capability-derivation failure. These point
// at a defect in the static version registry, not at anything the
// environment did.
func WrapVersionError(err error, label string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Protocol version %s has no capability set", label),
		Reason:  "The version registry names a wire version the encoder library does not know",
		Hint:    "Registry entries must use the supported wire versions (OpenFlow 1.3 through 1.5)",
		Err:     err,
	}
}

// WrapEncodingError wraps a generator failure for one matrix pair.
func WrapEncodingError(err error, version, message string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to encode %s for %s", message, version),
		Reason:  "The message generator rejected the field values or the target version",
		Hint:    "Some messages exist only in newer protocol revisions (bundles require 1.4+)",
		Try:     "ofpdgen list",
		Err:     err,
	}
}

// WrapWriteError wraps a fixture persistence failure.
func WrapWriteError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to write fixture %s", path),
		Reason:  extractIOReason(err),
		Hint:    "Check that the output directory is writable and has free space",
		Try:     "ofpdgen generate --output-dir <writable-dir>",
		Err:     err,
	}
}

func extractIOReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "permission denied") {
		return "Permission denied on the output path"
	}
	if strings.Contains(errStr, "no such file or directory") {
		return "A parent directory of the output path does not exist"
	}
	if strings.Contains(errStr, "no space") {
		return "The output filesystem is full"
	}
	if strings.Contains(errStr, "short write") {
		return "The filesystem accepted fewer bytes than the fixture contains"
	}
	return errStr
}
