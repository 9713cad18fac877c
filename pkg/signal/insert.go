package signal

import (
	"encoding/binary"
)

// InsertBit sets or clears the single bit at start, leaving the other
// seven bits of the byte untouched.
func InsertBit(data []byte, start uint8, v bool) {
	mask := byte(1) << (start % 8)
	if v {
		data[start/8] |= mask
		return
	}
	data[start/8] &^= mask
}

// InsertAligned writes a whole-byte field, overwriting exactly the bytes
// the field owns.
func InsertAligned(data []byte, start, width uint8, bigEndian bool, v uint64) {
	lo := int(start) / 8
	switch width {
	case 8:
		data[lo] = byte(v)
	case 16:
		if bigEndian {
			binary.BigEndian.PutUint16(data[lo:lo+2], uint16(v))
			return
		}
		binary.LittleEndian.PutUint16(data[lo:lo+2], uint16(v))
	case 32:
		if bigEndian {
			binary.BigEndian.PutUint32(data[lo:lo+4], uint32(v))
			return
		}
		binary.LittleEndian.PutUint32(data[lo:lo+4], uint32(v))
	case 64:
		if bigEndian {
			binary.BigEndian.PutUint64(data[lo:lo+8], v)
			return
		}
		binary.LittleEndian.PutUint64(data[lo:lo+8], v)
	}
}

// InsertUnalignedLittle is the read-modify-write mirror of
// ExtractUnalignedLittle: partially covered bytes are masked so that
// neighbouring fields sharing them survive, fully covered bytes are
// overwritten.
func InsertUnalignedLittle(data []byte, start, width uint8, v uint64) {
	low := int(start) / 8
	left := uint(start) % 8
	high := (int(start) + int(width) - 1) / 8
	right := (uint(start) + uint(width)) % 8

	if high == low {
		mask := byte(uint64(1)<<width-1) << left
		data[low] = data[low]&^mask | byte(v<<left)&mask
		return
	}

	first := byte(0xff) << left
	data[low] = data[low]&^first | byte(v<<left)&first
	for o := 1; o <= high-low; o++ {
		b := byte(v >> (uint(o)*8 - left))
		if low+o == high && right != 0 {
			mask := byte(uint64(1)<<right - 1)
			data[low+o] = data[low+o]&^mask | b&mask
			continue
		}
		data[low+o] = b
	}
}

// InsertUnalignedBig is the mirror of ExtractUnalignedBig: the low bits
// of the first byte, whole bytes MSB-first, then the top bits of the
// final byte, each partial byte via masked read-modify-write.
func InsertUnalignedBig(data []byte, start, width uint8, v uint64) {
	idx := int(start) / 8
	left := uint(start) % 8
	rem := uint(width)

	if rem <= left+1 {
		shift := left + 1 - rem
		mask := byte(uint64(1)<<rem-1) << shift
		data[idx] = data[idx]&^mask | byte(v<<shift)&mask
		return
	}

	keep := left + 1
	head := byte(uint64(1)<<keep - 1)
	rem -= keep
	data[idx] = data[idx]&^head | byte(v>>rem)&head
	for i := idx + 1; rem > 0; i++ {
		if rem < 8 {
			shift := 8 - rem
			mask := byte(0xff) << shift
			data[i] = data[i]&^mask | byte(v<<shift)&mask
			return
		}
		rem -= 8
		data[i] = byte(v >> rem)
	}
}
