package fixture

import (
	"fmt"
	"os"
)

// WriteFixture writes buf verbatim to path, creating or truncating the
// file, and guarantees the data is flushed and the file closed before
// returning. The parent directory must already exist; the writer never
// creates directories.
func WriteFixture(path string, buf []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	n, err := f.Write(buf)
	if err != nil {
		f.Close()
		return fmt.Errorf("write: %w", err)
	}
	if n != len(buf) {
		f.Close()
		return fmt.Errorf("short write: %d of %d bytes", n, len(buf))
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
