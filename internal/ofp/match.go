package ofp

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/ofplab/ofpdgen/internal/ofp/codec"
)

// matchTypeOXM is the only match type in OpenFlow 1.3+.
const matchTypeOXM uint16 = 1

// Match is a flow match in exact-match form. Zero-valued fields are
// omitted from the encoded TLV list; VLANVid is encoded with the
// present bit already applied.
type Match struct {
	InPort  uint32
	EthDst  net.HardwareAddr
	EthType uint16
	VLANVid uint16
	IPv4Dst net.IP
	TunSrc  net.IP
	TunDst  net.IP
	TunID   uint64
}

// appendMatch appends an ofp_match structure: type, length, OXM TLVs in
// a fixed emission order (OPENFLOW_BASIC by field number, then NXM_1),
// padded with zeros to an 8-byte boundary. The length field excludes
// the padding, as the protocol requires.
func appendMatch(dst []byte, m Match) ([]byte, error) {
	start := len(dst)
	dst = codec.AppendUint16(binary.BigEndian, dst, matchTypeOXM)
	dst = codec.AppendUint16(binary.BigEndian, dst, 0) // patched below

	if m.InPort != 0 {
		dst = appendOXMUint32(dst, oxmClassOpenFlowBasic, oxmFieldInPort, m.InPort)
	}
	if len(m.EthDst) > 0 {
		if len(m.EthDst) != 6 {
			return nil, fmt.Errorf("eth_dst: bad hardware address length %d", len(m.EthDst))
		}
		dst = appendOXM(dst, oxmClassOpenFlowBasic, oxmFieldEthDst, m.EthDst)
	}
	if m.EthType != 0 {
		dst = appendOXMUint16(dst, oxmClassOpenFlowBasic, oxmFieldEthType, m.EthType)
	}
	if m.VLANVid != 0 {
		dst = appendOXMUint16(dst, oxmClassOpenFlowBasic, oxmFieldVlanVID, m.VLANVid)
	}
	if ip4, err := ipv4Bytes("ipv4_dst", m.IPv4Dst); err != nil {
		return nil, err
	} else if ip4 != nil {
		dst = appendOXM(dst, oxmClassOpenFlowBasic, oxmFieldIPv4Dst, ip4)
	}
	if m.TunID != 0 {
		dst = appendOXMUint64(dst, oxmClassOpenFlowBasic, oxmFieldTunnelID, m.TunID)
	}
	if ip4, err := ipv4Bytes("tun_src", m.TunSrc); err != nil {
		return nil, err
	} else if ip4 != nil {
		dst = appendOXM(dst, oxmClassNXM1, nxmFieldTunIPv4Src, ip4)
	}
	if ip4, err := ipv4Bytes("tun_dst", m.TunDst); err != nil {
		return nil, err
	} else if ip4 != nil {
		dst = appendOXM(dst, oxmClassNXM1, nxmFieldTunIPv4Dst, ip4)
	}

	codec.PutUint16(binary.BigEndian, dst[start+2:start+4], uint16(len(dst)-start))
	if pad := (8 - (len(dst)-start)%8) % 8; pad > 0 {
		dst = codec.Pad(dst, pad)
	}
	return dst, nil
}

func ipv4Bytes(field string, ip net.IP) ([]byte, error) {
	if ip == nil {
		return nil, nil
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("%s: not an IPv4 address: %s", field, ip)
	}
	return ip4, nil
}
