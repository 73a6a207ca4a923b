// Package ofp implements the subset of OpenFlow wire encoding needed to
// build golden protocol fixtures: the common header, OXM match
// serialization, and the packet-in and bundle-control messages.
package ofp

import (
	"errors"
	"fmt"
)

// Version is the wire protocol version byte carried in every OpenFlow
// message header.
type Version uint8

// Supported wire versions.
const (
	V13 Version = 0x04 // OpenFlow 1.3
	V14 Version = 0x05 // OpenFlow 1.4
	V15 Version = 0x06 // OpenFlow 1.5
)

func (v Version) String() string {
	switch v {
	case V13:
		return "OpenFlow 1.3"
	case V14:
		return "OpenFlow 1.4"
	case V15:
		return "OpenFlow 1.5"
	}
	return fmt.Sprintf("OpenFlow(0x%02x)", uint8(v))
}

// ErrUnknownVersion is returned when a wire version has no known
// capability set.
var ErrUnknownVersion = errors.New("unknown OpenFlow version")

// ErrUnsupportedMessage is returned when a message type is not part of
// the target version's wire protocol.
var ErrUnsupportedMessage = errors.New("message not supported by protocol version")

// Context is the capability set derived from a wire version. Encoders
// consult it for the header version byte and for per-version message
// availability.
type Context struct {
	version Version

	// bundles were introduced in OpenFlow 1.4
	bundles bool
}

// ContextForVersion derives the capability set for a wire version.
func ContextForVersion(v Version) (*Context, error) {
	switch v {
	case V13:
		return &Context{version: v}, nil
	case V14, V15:
		return &Context{version: v, bundles: true}, nil
	}
	return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownVersion, uint8(v))
}

// Version returns the wire version the context was derived from.
func (c *Context) Version() Version { return c.version }

// SupportsBundles reports whether the version carries bundle messages.
func (c *Context) SupportsBundles() bool { return c.bundles }
