package signal

import (
	"encoding/binary"
)

// ExtractBit reads the single bit at start. Bit numbering inside a byte
// is identical for both byte orders.
func ExtractBit(data []byte, start uint8) bool {
	b := data[start/8]
	mask := byte(1) << (start % 8)
	return b&mask != 0
}

// ExtractAligned reads a whole-byte field of width 8, 16, 32 or 64 bits
// beginning at start, which must sit on a byte boundary (LSB for
// little-endian, MSB for big-endian sawtooth numbering; both make
// start/8 the first byte).
func ExtractAligned(data []byte, start, width uint8, bigEndian bool) uint64 {
	lo := int(start) / 8
	switch width {
	case 8:
		return uint64(data[lo])
	case 16:
		if bigEndian {
			return uint64(binary.BigEndian.Uint16(data[lo : lo+2]))
		}
		return uint64(binary.LittleEndian.Uint16(data[lo : lo+2]))
	case 32:
		if bigEndian {
			return uint64(binary.BigEndian.Uint32(data[lo : lo+4]))
		}
		return uint64(binary.LittleEndian.Uint32(data[lo : lo+4]))
	case 64:
		if bigEndian {
			return binary.BigEndian.Uint64(data[lo : lo+8])
		}
		return binary.LittleEndian.Uint64(data[lo : lo+8])
	}
	return 0
}

// ExtractUnalignedLittle assembles a little-endian field that does not
// qualify for whole-byte reads. The first byte contributes its bits above
// the in-byte start position, every following byte ORs in at successively
// higher value positions, and the final byte is trimmed to the bits the
// field actually owns there.
func ExtractUnalignedLittle(data []byte, start, width uint8) uint64 {
	low := int(start) / 8
	left := uint(start) % 8
	high := (int(start) + int(width) - 1) / 8
	right := (uint(start) + uint(width)) % 8

	v := uint64(data[low]) >> left
	if high == low {
		mask := uint64(1)<<width - 1
		return v & mask
	}
	for o := 1; o <= high-low; o++ {
		b := uint64(data[low+o])
		if low+o == high && right != 0 {
			b &= uint64(1)<<right - 1
		}
		v |= b << (uint(o)*8 - left)
	}
	return v
}

// ExtractUnalignedBig assembles a big-endian field. start names the MSB
// of the field in sawtooth numbering; the walk consumes the low bits of
// the first byte, then whole bytes MSB-first, then the top bits of the
// final byte.
func ExtractUnalignedBig(data []byte, start, width uint8) uint64 {
	idx := int(start) / 8
	left := uint(start) % 8
	rem := uint(width)

	if rem <= left+1 {
		v := uint64(data[idx]) >> (left + 1 - rem)
		mask := uint64(1)<<rem - 1
		return v & mask
	}

	keep := left + 1
	head := uint64(1)<<keep - 1
	rem -= keep
	v := (uint64(data[idx]) & head) << rem
	for i := idx + 1; rem > 0; i++ {
		if rem < 8 {
			v |= uint64(data[i]) >> (8 - rem)
			break
		}
		rem -= 8
		v |= uint64(data[i]) << rem
	}
	return v
}

// SignExtend interprets the low width bits of v as a two's complement
// value. Both unaligned walks and the aligned reads share this one
// implementation.
func SignExtend(v uint64, width uint8) int64 {
	if width == 0 || width >= 64 {
		return int64(v)
	}
	sign := uint64(1) << (width - 1)
	if v&sign != 0 {
		mask := uint64(1)<<width - 1
		v |= ^mask
	}
	return int64(v)
}
