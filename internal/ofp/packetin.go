package ofp

import (
	"encoding/binary"

	"github.com/ofplab/ofpdgen/internal/ofp/codec"
)

// Packet-in reason codes (1.4+ numbering).
const (
	PacketInReasonTableMiss uint8 = 0
	PacketInReasonApplyAct  uint8 = 1
)

// PacketIn is an OFPT_PACKET_IN message: a packet handed up to the
// controller together with the match metadata describing where it was
// received.
type PacketIn struct {
	BufferID uint32
	TotalLen uint16
	Reason   uint8
	TableID  uint8
	Cookie   uint64
	Match    Match
	Data     []byte
}

// Encode serializes the message for the context's wire version. The
// layout (buffer_id, total_len, reason, table_id, cookie, match, pad,
// data) is identical across OpenFlow 1.3 through 1.5.
func (p PacketIn) Encode(ctx *Context) ([]byte, error) {
	msg := appendHeader(nil, ctx.Version(), TypePacketIn, 0)
	msg = codec.AppendUint32(binary.BigEndian, msg, p.BufferID)
	msg = codec.AppendUint16(binary.BigEndian, msg, p.TotalLen)
	msg = append(msg, p.Reason, p.TableID)
	msg = codec.AppendUint64(binary.BigEndian, msg, p.Cookie)
	msg, err := appendMatch(msg, p.Match)
	if err != nil {
		return nil, err
	}
	msg = codec.Pad(msg, 2)
	msg = append(msg, p.Data...)
	return finishMessage(msg), nil
}
