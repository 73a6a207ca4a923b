package fixture

import (
	"net"

	"github.com/ofplab/ofpdgen/internal/ofp"
)

// Fixed field values shared by every fixture. Generation must be
// deterministic, so all inputs are hard-coded here and reused unchanged
// for every protocol version.

// DefaultMatch returns the flow match embedded in match-carrying
// fixtures.
func DefaultMatch() ofp.Match {
	return ofp.Match{
		InPort:  0xabcd,
		EthDst:  net.HardwareAddr{0xaa, 0xbb, 0xcc, 0x99, 0x88, 0x77},
		EthType: 0x0800,
		VLANVid: 999 | ofp.VlanVIDPresent,
		IPv4Dst: net.IPv4(192, 168, 2, 1),
		TunSrc:  net.IPv4(192, 168, 2, 3),
		TunDst:  net.IPv4(192, 168, 2, 4),
		TunID:   50000,
	}
}

// DefaultPacketIn returns the packet-in message parameters. The payload
// is deliberately tiny and smaller than total_len, as a buffered
// packet-in would truncate it.
func DefaultPacketIn() ofp.PacketIn {
	return ofp.PacketIn{
		BufferID: 200,
		TotalLen: 1000,
		Reason:   ofp.PacketInReasonTableMiss,
		TableID:  100,
		Match:    DefaultMatch(),
		Data:     []byte("hoge"),
	}
}

// DefaultBundleControl returns the bundle-control message parameters.
func DefaultBundleControl() ofp.BundleControl {
	return ofp.BundleControl{
		BundleID: 99999999,
		Type:     ofp.BundleCtrlOpenReply,
		Flags:    ofp.BundleFlagAtomic,
	}
}
