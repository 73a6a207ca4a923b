// Package fixture generates golden OpenFlow message fixtures: one
// binary file per (protocol version, message kind) pair, written under
// a deterministic directory layout for consumption by conformance
// tests.
package fixture

import "github.com/ofplab/ofpdgen/internal/ofp"

// GeneratorFunc produces the encoded wire form of one message kind for
// a protocol capability set.
type GeneratorFunc func(*ofp.Context) ([]byte, error)

// ProtocolVersion is one row of the dispatch matrix: a protocol
// revision with its display label, output subdirectory tag, and wire
// version.
type ProtocolVersion struct {
	Label  string
	DirTag string
	Wire   ofp.Version
}

// MessageSpec is one column of the dispatch matrix: a message kind with
// the generator that encodes it.
type MessageSpec struct {
	Name     string
	Generate GeneratorFunc
}

// DefaultVersions returns the protocol versions fixtures are built for.
// The slice is freshly allocated; callers may reorder or extend it.
func DefaultVersions() []ProtocolVersion {
	return []ProtocolVersion{
		{Label: "OFP15", DirTag: "of15", Wire: ofp.V15},
	}
}

// DefaultMessages returns the message kinds fixtures are built for, in
// generation order.
func DefaultMessages() []MessageSpec {
	return []MessageSpec{
		{
			Name: "packet_in",
			Generate: func(ctx *ofp.Context) ([]byte, error) {
				return DefaultPacketIn().Encode(ctx)
			},
		},
		{
			Name: "bundle_ctrl",
			Generate: func(ctx *ofp.Context) ([]byte, error) {
				return DefaultBundleControl().Encode(ctx)
			},
		},
	}
}
