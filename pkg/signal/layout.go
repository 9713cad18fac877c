// Package signal implements the bit-level layout analysis and codec
// primitives shared by the code generator and the runtime decoder.
//
// Bit positions follow the DBC conventions: little-endian signals count
// bits from the least significant bit of byte 0 upward, big-endian
// signals name the most significant bit of the field in sawtooth
// numbering (bit 7 of a byte is that byte's MSB) and descend from there.
package signal

import (
	"github.com/cockroachdb/errors"
)

// ErrUnsupportedLayout marks signals whose bit placement cannot be
// compiled: zero or oversized widths, spans that leave the payload, or
// multiplexed signals offered to the generator.
var ErrUnsupportedLayout = errors.New("unsupported signal layout")

// Layout selects which extraction/insertion algorithm applies to a signal.
type Layout int

const (
	// SingleBit is a one bit field, byte order is irrelevant.
	SingleBit Layout = iota
	// AlignedLittle starts on a byte boundary and fills whole bytes,
	// little-endian.
	AlignedLittle
	// AlignedBig starts on a byte's MSB and fills whole bytes, big-endian.
	AlignedBig
	// UnalignedLittle is every other little-endian placement.
	UnalignedLittle
	// UnalignedBig is every other big-endian placement.
	UnalignedBig
)

func (l Layout) String() string {
	switch l {
	case SingleBit:
		return "single_bit"
	case AlignedLittle:
		return "aligned_le"
	case AlignedBig:
		return "aligned_be"
	case UnalignedLittle:
		return "unaligned_le"
	case UnalignedBig:
		return "unaligned_be"
	}
	return "unknown"
}

// Classify maps a signal's placement to its layout. It assumes the
// placement already passed Validate.
func Classify(start, width uint8, bigEndian bool) Layout {
	switch {
	case width == 1:
		return SingleBit
	case !bigEndian && start%8 == 0 && isStorageWidth(width):
		return AlignedLittle
	case bigEndian && start%8 == 7 && isStorageWidth(width):
		return AlignedBig
	case bigEndian:
		return UnalignedBig
	default:
		return UnalignedLittle
	}
}

// isStorageWidth reports whether a field fills its storage type exactly,
// which is what makes a byte-aligned placement eligible for whole-byte
// reads and writes.
func isStorageWidth(width uint8) bool {
	return width == 8 || width == 16 || width == 32 || width == 64
}

// Validate checks that a signal of the given width starting at the given
// bit stays inside a payload of length bytes.
func Validate(start, width, length uint8, bigEndian bool) error {
	if width == 0 || width > 64 {
		return errors.Wrapf(ErrUnsupportedLayout, "width %d outside 1..64", width)
	}
	total := uint(length) * 8
	if bigEndian {
		// Flatten the sawtooth start to the count of bits preceding
		// the field's MSB.
		msb := uint(start)/8*8 + 7 - uint(start)%8
		if msb+uint(width) > total {
			return errors.Wrapf(ErrUnsupportedLayout,
				"big-endian field at bit %d width %d exceeds %d payload bits", start, width, total)
		}
		return nil
	}
	if uint(start)+uint(width) > total {
		return errors.Wrapf(ErrUnsupportedLayout,
			"little-endian field at bit %d width %d exceeds %d payload bits", start, width, total)
	}
	return nil
}
