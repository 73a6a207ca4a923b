package fixture

import (
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/ofplab/ofpdgen/internal/ofp"
)

// OpenFlowPort is the IANA port for the OpenFlow control channel.
const OpenFlowPort = 6653

// WriteMatrixPCAP renders the full dispatch matrix as a capture file:
// each encoded message rides in a synthetic Ethernet/IPv4/TCP frame on
// the control-channel port, one TCP flow per protocol version.
// Generators are pure functions of their inputs, so re-invoking them
// here yields bytes identical to the fixture files.
func WriteMatrixPCAP(path string, versions []ProtocolVersion, messages []MessageSpec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pcap: %w", err)
	}
	defer file.Close()

	writer := pcapgo.NewWriter(file)
	if err := writer.WriteFileHeader(65535, layers.LinkTypeEthernet); err != nil {
		return fmt.Errorf("write pcap header: %w", err)
	}

	nextPort := uint16(50000)
	for _, v := range versions {
		ctx, err := ofp.ContextForVersion(v.Wire)
		if err != nil {
			return &VersionError{Label: v.Label, Err: err}
		}
		srcPort := nextPort
		nextPort++
		seq := uint32(1)

		for _, m := range messages {
			data, err := m.Generate(ctx)
			if err != nil {
				return &EncodeError{Version: v.Label, Message: m.Name, Err: err}
			}

			buffer := gopacket.NewSerializeBuffer()
			opts := gopacket.SerializeOptions{
				FixLengths:       true,
				ComputeChecksums: true,
			}

			ethernet := &layers.Ethernet{
				SrcMAC:       []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
				DstMAC:       []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x02},
				EthernetType: layers.EthernetTypeIPv4,
			}
			ip := &layers.IPv4{
				Version:  4,
				TTL:      64,
				Protocol: layers.IPProtocolTCP,
				SrcIP:    []byte{192, 168, 100, 10},
				DstIP:    []byte{192, 168, 100, 20},
			}
			tcp := &layers.TCP{
				SrcPort: layers.TCPPort(srcPort),
				DstPort: layers.TCPPort(OpenFlowPort),
				ACK:     true,
				PSH:     true,
				Seq:     seq,
			}
			_ = tcp.SetNetworkLayerForChecksum(ip)
			seq += uint32(len(data))

			if err := gopacket.SerializeLayers(buffer, opts, ethernet, ip, tcp, gopacket.Payload(data)); err != nil {
				return fmt.Errorf("serialize packet: %w", err)
			}
			if err := writer.WritePacket(gopacket.CaptureInfo{
				CaptureLength: len(buffer.Bytes()),
				Length:        len(buffer.Bytes()),
			}, buffer.Bytes()); err != nil {
				return fmt.Errorf("write packet: %w", err)
			}
		}
	}

	return nil
}
