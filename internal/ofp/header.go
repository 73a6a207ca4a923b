package ofp

import (
	"encoding/binary"

	"github.com/ofplab/ofpdgen/internal/ofp/codec"
)

// OpenFlow message type codes (1.3+ numbering).
const (
	TypePacketIn      uint8 = 10
	TypeBundleControl uint8 = 33
)

// HeaderLen is the size of the common ofp_header.
const HeaderLen = 8

// appendHeader appends an ofp_header with a zero length field. The
// length is patched once the full message has been assembled.
func appendHeader(dst []byte, v Version, msgType uint8, xid uint32) []byte {
	dst = append(dst, byte(v), msgType)
	dst = codec.AppendUint16(binary.BigEndian, dst, 0)
	dst = codec.AppendUint32(binary.BigEndian, dst, xid)
	return dst
}

// finishMessage patches the header length field with the final message
// size.
func finishMessage(msg []byte) []byte {
	codec.PutUint16(binary.BigEndian, msg[2:4], uint16(len(msg)))
	return msg
}
