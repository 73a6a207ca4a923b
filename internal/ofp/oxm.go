package ofp

import (
	"encoding/binary"

	"github.com/ofplab/ofpdgen/internal/ofp/codec"
)

// OXM classes.
const (
	oxmClassNXM1          uint16 = 0x0001
	oxmClassOpenFlowBasic uint16 = 0x8000
)

// OXM field codes, class OPENFLOW_BASIC.
const (
	oxmFieldInPort   uint8 = 0
	oxmFieldEthDst   uint8 = 3
	oxmFieldEthType  uint8 = 5
	oxmFieldVlanVID  uint8 = 6
	oxmFieldIPv4Dst  uint8 = 12
	oxmFieldTunnelID uint8 = 38
)

// OXM field codes, class NXM_1. Tunnel endpoint addresses have no
// OPENFLOW_BASIC equivalent, so they travel as Nicira extension TLVs.
const (
	nxmFieldTunIPv4Src uint8 = 31
	nxmFieldTunIPv4Dst uint8 = 32
)

// VlanVIDPresent is ORed into the VLAN_VID value to indicate a tagged
// frame.
const VlanVIDPresent uint16 = 0x1000

// appendOXM appends one OXM TLV: a 4-byte header (class, field,
// hasmask=0, payload length) followed by the payload.
func appendOXM(dst []byte, class uint16, field uint8, value []byte) []byte {
	dst = codec.AppendUint16(binary.BigEndian, dst, class)
	dst = append(dst, field<<1, byte(len(value)))
	return append(dst, value...)
}

func appendOXMUint16(dst []byte, class uint16, field uint8, value uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], value)
	return appendOXM(dst, class, field, buf[:])
}

func appendOXMUint32(dst []byte, class uint16, field uint8, value uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], value)
	return appendOXM(dst, class, field, buf[:])
}

func appendOXMUint64(dst []byte, class uint16, field uint8, value uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	return appendOXM(dst, class, field, buf[:])
}
