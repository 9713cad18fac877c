package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"go.einride.tech/can/pkg/descriptor"

	"github.com/dbckit/dbcdata/pkg/can"
	"github.com/dbckit/dbcdata/pkg/signal"
)

var (
	// ErrUnknownMessage reports a frame whose ID has no schema entry.
	ErrUnknownMessage = errors.New("message not in schema")
	// ErrLengthMismatch reports a frame whose payload does not match
	// the message DLC.
	ErrLengthMismatch = errors.New("payload length does not match DLC")
)

// DecodedSignal is one signal's value pulled out of a frame.
type DecodedSignal struct {
	Signal *descriptor.Signal
	// Raw is bool for 1-bit signals, int64 for signed signals and
	// uint64 otherwise.
	Raw any
	// Physical is the scaled engineering value, present when the
	// schema declares a scale or offset.
	Physical *float64
	// Description is the matching value-table entry, if any.
	Description string
}

// DecodedMessage is a fully decoded frame.
type DecodedMessage struct {
	Name       string
	ID         uint32
	IsExtended bool
	Timestamp  time.Time
	Signals    map[string]DecodedSignal
}

// Codec interprets frames against a compiled schema without generated
// code. Multiplexed messages are decoded branch-aware: a frame reports
// only the branch signals its multiplexer value selects.
type Codec struct {
	messages map[uint32]*descriptor.Message
}

// New validates every signal layout in the database and builds the ID
// lookup, so Decode never meets a layout it cannot interpret.
func New(db *descriptor.Database) (*Codec, error) {
	c := &Codec{messages: make(map[uint32]*descriptor.Message, len(db.Messages))}
	for _, m := range db.Messages {
		if m.Length > 8 {
			return nil, errors.Wrapf(signal.ErrUnsupportedLayout,
				"message %s: DLC %d exceeds the classic CAN payload", m.Name, m.Length)
		}
		for _, s := range m.Signals {
			if err := signal.Validate(s.Start, s.Length, m.Length, s.IsBigEndian); err != nil {
				return nil, errors.Wrapf(err, "%s.%s", m.Name, s.Name)
			}
		}
		c.messages[m.ID] = m
	}
	return c, nil
}

// Message returns the schema entry behind an ID.
func (c *Codec) Message(id uint32) (*descriptor.Message, bool) {
	m, ok := c.messages[id]
	return m, ok
}

// Decode interprets one frame. Unknown IDs and frames whose shape does
// not match the schema are recoverable: processing loops drop the
// frame and continue.
func (c *Codec) Decode(f *can.TimedFrame) (*DecodedMessage, error) {
	msg, ok := c.messages[f.ID]
	if !ok || msg.IsExtended != f.IsExtended {
		return nil, errors.Wrapf(ErrUnknownMessage, "id %#x", f.ID)
	}
	if f.IsRemote {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s: remote frame carries no data", msg.Name)
	}
	if f.Length != msg.Length {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s: got %d bytes, want %d", msg.Name, f.Length, msg.Length)
	}

	data := f.Data[:msg.Length]
	dm := &DecodedMessage{
		Name:       msg.Name,
		ID:         msg.ID,
		IsExtended: msg.IsExtended,
		Timestamp:  f.Timestamp,
		Signals:    make(map[string]DecodedSignal, len(msg.Signals)),
	}

	var (
		mux    *descriptor.Signal
		muxVal uint64
	)
	for _, s := range msg.Signals {
		if s.IsMultiplexed {
			continue
		}
		if s.IsMultiplexer {
			mux = s
			muxVal = extractRaw(data, s)
		}
		dm.Signals[s.Name] = decodeSignal(data, s)
	}
	if mux != nil {
		for _, s := range msg.Signals {
			if s.IsMultiplexed && uint64(s.MultiplexerValue) == muxVal {
				dm.Signals[s.Name] = decodeSignal(data, s)
			}
		}
	}
	return dm, nil
}

// Encode builds a frame for one message from named signal values. Bool
// and integer values are raw; float64 values are physical and go back
// through scale and offset first. Signals not named keep zero bits;
// when encoding a multiplexed branch the caller names the multiplexer
// value alongside the branch signals.
func (c *Codec) Encode(id uint32, values map[string]any) (*can.TimedFrame, error) {
	msg, ok := c.messages[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMessage, "id %#x", id)
	}
	f := &can.TimedFrame{}
	f.ID = msg.ID
	f.Length = msg.Length
	f.IsExtended = msg.IsExtended
	for name, value := range values {
		s, ok := signalByName(msg, name)
		if !ok {
			return nil, errors.Newf("%s has no signal %s", msg.Name, name)
		}
		raw, err := rawValue(s, value)
		if err != nil {
			return nil, err
		}
		insertRaw(f.Data[:msg.Length], s, raw)
	}
	return f, nil
}

func signalByName(msg *descriptor.Message, name string) (*descriptor.Signal, bool) {
	for _, s := range msg.Signals {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func decodeSignal(data []byte, s *descriptor.Signal) DecodedSignal {
	ds := DecodedSignal{Signal: s}
	raw := extractRaw(data, s)
	var numeric float64
	table := int64(raw)
	switch {
	case s.Length == 1:
		ds.Raw = raw != 0
	case s.IsSigned:
		sv := signal.SignExtend(raw, s.Length)
		ds.Raw = sv
		table = sv
		numeric = float64(sv)
	default:
		ds.Raw = raw
		numeric = float64(raw)
	}
	if s.Length > 1 && (s.Scale != 1 || s.Offset != 0) {
		pv := numeric*s.Scale + s.Offset
		ds.Physical = &pv
	}
	for _, vd := range s.ValueDescriptions {
		if vd.Value == table {
			ds.Description = vd.Description
			break
		}
	}
	return ds
}

// rawValue turns a caller-provided value into the signal's raw bits.
func rawValue(s *descriptor.Signal, value any) (uint64, error) {
	switch v := value.(type) {
	case bool:
		if s.Length != 1 {
			return 0, errors.Newf("%s is %d bits, not a flag", s.Name, s.Length)
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case float64:
		return uint64(int64((v - s.Offset) / s.Scale)), nil
	case int:
		return uint64(int64(v)), nil
	case int64:
		return uint64(v), nil
	case uint64:
		return v, nil
	}
	return 0, errors.Newf("cannot encode %T into %s", value, s.Name)
}

func extractRaw(data []byte, s *descriptor.Signal) uint64 {
	switch signal.Classify(s.Start, s.Length, s.IsBigEndian) {
	case signal.SingleBit:
		if signal.ExtractBit(data, s.Start) {
			return 1
		}
		return 0
	case signal.AlignedLittle, signal.AlignedBig:
		return signal.ExtractAligned(data, s.Start, s.Length, s.IsBigEndian)
	case signal.UnalignedBig:
		return signal.ExtractUnalignedBig(data, s.Start, s.Length)
	default:
		return signal.ExtractUnalignedLittle(data, s.Start, s.Length)
	}
}

func insertRaw(data []byte, s *descriptor.Signal, v uint64) {
	switch signal.Classify(s.Start, s.Length, s.IsBigEndian) {
	case signal.SingleBit:
		signal.InsertBit(data, s.Start, v != 0)
	case signal.AlignedLittle, signal.AlignedBig:
		signal.InsertAligned(data, s.Start, s.Length, s.IsBigEndian, v)
	case signal.UnalignedBig:
		signal.InsertUnalignedBig(data, s.Start, s.Length, v)
	default:
		signal.InsertUnalignedLittle(data, s.Start, s.Length, v)
	}
}

// Numeric returns the value of a decoded signal as a float64: the
// physical value when present, the typed raw value otherwise.
func Numeric(ds DecodedSignal) float64 {
	if ds.Physical != nil {
		return *ds.Physical
	}
	switch v := ds.Raw.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// InRange reports whether a physical value lies inside the signal's
// declared range. Zero min and max means the schema declared none.
func InRange(s *descriptor.Signal, v float64) bool {
	if s.Min == 0 && s.Max == 0 {
		return true
	}
	const eps = 1e-9
	return v >= s.Min-eps && v <= s.Max+eps
}

// FormatValue renders a physical value with magnitude-dependent
// precision, followed by the unit when there is one.
func FormatValue(v float64, unit string) string {
	var s string
	switch abs := math.Abs(v); {
	case abs == 0:
		s = "0"
	case abs >= 1000 || abs < 0.01:
		s = fmt.Sprintf("%.3e", v)
	case abs >= 100:
		s = fmt.Sprintf("%.1f", v)
	case abs >= 10:
		s = fmt.Sprintf("%.2f", v)
	default:
		s = fmt.Sprintf("%.3f", v)
	}
	if unit == "" {
		return s
	}
	return s + " " + unit
}
