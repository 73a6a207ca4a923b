package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ofplab/ofpdgen/internal/logging"
	"github.com/ofplab/ofpdgen/internal/ofp"
)

// Output naming convention. Fixture content is a pure function of the
// (version, message) pair, so the path must be too.
const (
	FixturePrefix = "libofproto"
	FixtureExt    = "packet"
)

// FixturePath returns the deterministic output path for one
// (version, message) pair:
// <base>/<dir_tag>/<prefix>-<label>-<name>.<ext>
func FixturePath(baseDir string, v ProtocolVersion, m MessageSpec) string {
	name := fmt.Sprintf("%s-%s-%s.%s", FixturePrefix, v.Label, m.Name, FixtureExt)
	return filepath.Join(baseDir, v.DirTag, name)
}

// Result records one generated fixture.
type Result struct {
	Version string
	Message string
	Path    string
	Size    int
}

// Harness drives the dispatch matrix: for every version in Versions and
// every message in Messages, derive the version's capability set,
// invoke the generator, and persist the buffer. Both registries are
// read-only during a run.
type Harness struct {
	BaseDir  string
	Versions []ProtocolVersion
	Messages []MessageSpec
	Log      *logging.Logger
}

// Run generates the full matrix sequentially and fail-fast: the first
// error aborts the run and no further pair is attempted. On success it
// returns one Result per (version, message) pair in traversal order.
func (h *Harness) Run() ([]Result, error) {
	results := make([]Result, 0, len(h.Versions)*len(h.Messages))
	for _, v := range h.Versions {
		ctx, err := ofp.ContextForVersion(v.Wire)
		if err != nil {
			return nil, &VersionError{Label: v.Label, Err: err}
		}
		if err := os.MkdirAll(filepath.Join(h.BaseDir, v.DirTag), 0o755); err != nil {
			return nil, &WriteError{Path: filepath.Join(h.BaseDir, v.DirTag), Err: err}
		}
		for _, m := range h.Messages {
			buf, err := m.Generate(ctx)
			if err != nil {
				return nil, &EncodeError{Version: v.Label, Message: m.Name, Err: err}
			}
			path := FixturePath(h.BaseDir, v, m)
			if err := WriteFixture(path, buf); err != nil {
				return nil, &WriteError{Path: path, Err: err}
			}
			h.Log.Verbose("wrote %s (%d bytes)", path, len(buf))
			results = append(results, Result{
				Version: v.Label,
				Message: m.Name,
				Path:    path,
				Size:    len(buf),
			})
		}
	}
	return results, nil
}
