package ofp

import (
	"encoding/binary"
	"fmt"

	"github.com/ofplab/ofpdgen/internal/ofp/codec"
)

// Bundle control subtypes.
const (
	BundleCtrlOpenRequest    uint16 = 0
	BundleCtrlOpenReply      uint16 = 1
	BundleCtrlCloseRequest   uint16 = 2
	BundleCtrlCloseReply     uint16 = 3
	BundleCtrlCommitRequest  uint16 = 4
	BundleCtrlCommitReply    uint16 = 5
	BundleCtrlDiscardRequest uint16 = 6
	BundleCtrlDiscardReply   uint16 = 7
)

// Bundle flags.
const (
	BundleFlagAtomic  uint16 = 1 << 0
	BundleFlagOrdered uint16 = 1 << 1
)

// BundleControl is an OFPT_BUNDLE_CONTROL message. Bundles exist only
// in OpenFlow 1.4 and later.
type BundleControl struct {
	BundleID uint32
	Type     uint16
	Flags    uint16
}

// Encode serializes the message for the context's wire version, with no
// bundle properties attached.
func (b BundleControl) Encode(ctx *Context) ([]byte, error) {
	if !ctx.SupportsBundles() {
		return nil, fmt.Errorf("bundle-control: %w: %s", ErrUnsupportedMessage, ctx.Version())
	}
	msg := appendHeader(nil, ctx.Version(), TypeBundleControl, 0)
	msg = codec.AppendUint32(binary.BigEndian, msg, b.BundleID)
	msg = codec.AppendUint16(binary.BigEndian, msg, b.Type)
	msg = codec.AppendUint16(binary.BigEndian, msg, b.Flags)
	return finishMessage(msg), nil
}
