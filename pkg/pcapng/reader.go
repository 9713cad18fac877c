package pcapng

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/dbckit/dbcdata/pkg/can"
)

// linkTypeCAN is the pcap link type of raw SocketCAN captures.
// https://www.tcpdump.org/linktypes.html
const linkTypeCAN layers.LinkType = 227

// SocketCAN ID word flags and masks.
const (
	idFlagExtended = 0x80000000
	idFlagRemote   = 0x40000000
	idFlagError    = 0x20000000
	idMaskExtended = 0x1fffffff
	idMaskStandard = 0x7ff
)

// Reader pulls CAN frames out of a pcapng capture. Linux cooked
// captures (SLL) and raw CAN captures are supported; packets that do
// not carry a well-formed CAN data frame are counted and skipped.
type Reader struct {
	ng       *pcapgo.NgReader
	linkType layers.LinkType
	packets  uint64
	skipped  uint64
}

// NewReader opens a pcapng capture and checks that its link type is
// one the frame parser understands.
func NewReader(r io.Reader) (*Reader, error) {
	ng, err := pcapgo.NewNgReader(r, pcapgo.DefaultNgReaderOptions)
	if err != nil {
		return nil, errors.Wrap(err, "open pcapng capture")
	}
	lt := ng.LinkType()
	if lt != layers.LinkTypeLinuxSLL && lt != linkTypeCAN {
		return nil, errors.Newf("unsupported link type %v, want Linux SLL or raw CAN", lt)
	}
	return &Reader{ng: ng, linkType: lt}, nil
}

// ReadNext returns the next CAN frame and its capture timestamp.
// io.EOF reports the end of the capture.
func (r *Reader) ReadNext() (*can.TimedFrame, error) {
	for {
		data, ci, err := r.ng.ReadPacketData()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, errors.Wrap(err, "read packet")
		}
		r.packets++

		f, err := r.frameFromPacket(data, ci)
		if err != nil {
			r.skipped++
			continue
		}
		return f, nil
	}
}

// Packets returns the number of packets read so far.
func (r *Reader) Packets() uint64 { return r.packets }

// Skipped returns the number of packets that carried no usable CAN frame.
func (r *Reader) Skipped() uint64 { return r.skipped }

func (r *Reader) frameFromPacket(data []byte, ci gopacket.CaptureInfo) (*can.TimedFrame, error) {
	payload := data
	if r.linkType == layers.LinkTypeLinuxSLL {
		packet := gopacket.NewPacket(data, r.linkType, gopacket.Default)
		sll, ok := packet.Layer(layers.LayerTypeLinuxSLL).(*layers.LinuxSLL)
		if !ok {
			return nil, errors.New("packet carries no SLL layer")
		}
		payload = sll.Payload
	}
	return ParseSocketCAN(payload, ci.Timestamp)
}

// ParseSocketCAN decodes one SocketCAN frame: a little-endian ID word
// carrying the extended, remote and error flags, a DLC byte, three
// padding bytes and the data bytes. Error frames are rejected.
func ParseSocketCAN(data []byte, ts time.Time) (*can.TimedFrame, error) {
	if len(data) < 8 {
		return nil, errors.Newf("short CAN frame: %d bytes", len(data))
	}
	word := binary.LittleEndian.Uint32(data[0:4])
	if word&idFlagError != 0 {
		return nil, errors.New("error frame")
	}

	f := &can.TimedFrame{Timestamp: ts}
	f.IsExtended = word&idFlagExtended != 0
	f.IsRemote = word&idFlagRemote != 0
	if f.IsExtended {
		f.ID = word & idMaskExtended
	} else {
		f.ID = word & idMaskStandard
	}

	length := data[4]
	if length > 8 {
		return nil, errors.Newf("DLC %d exceeds the classic CAN payload", length)
	}
	f.Length = length
	if f.IsRemote {
		return f, nil
	}
	if len(data) < 8+int(length) {
		return nil, errors.Newf("truncated CAN frame: %d data bytes, DLC %d", len(data)-8, length)
	}
	copy(f.Data[:], data[8:8+length])
	return f, nil
}
