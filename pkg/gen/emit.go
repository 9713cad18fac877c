package gen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dbckit/dbcdata/pkg/signal"
)

// Generate renders a built model as a Go source file. The output is
// already gofmt-formatted; the caller only writes it to disk.
func Generate(f *File) []byte {
	e := &emitter{}
	e.pf("// Code generated by dbcdata. DO NOT EDIT.\n")
	e.pf("\n")
	e.pf("// Package %s provides types for the messages of %s.\n", f.Package, filepath.Base(f.Source))
	e.pf("package %s\n", f.Package)
	e.pf("\n")
	if binaryNeeded(f) {
		e.pf("import (\n")
		e.pf("\t\"encoding/binary\"\n")
		e.pf("\t\"fmt\"\n")
		e.pf(")\n")
	} else {
		e.pf("import \"fmt\"\n")
	}
	for _, m := range f.Messages {
		e.message(m)
	}
	return []byte(e.buf.String())
}

// OutputPath returns the conventional location of a generated file:
// <outDir>/<package>/<dbc base>.go, keeping the .dbc suffix in the
// file name so the source schema stays visible in the tree.
func OutputPath(outDir string, f *File) string {
	return filepath.Join(outDir, f.Package, filepath.Base(f.Source)+".go")
}

// binaryNeeded reports whether any codec body reads or writes through
// encoding/binary, which only the aligned multi-byte layouts do.
func binaryNeeded(f *File) bool {
	for _, m := range f.Messages {
		for _, s := range m.Signals {
			if (s.Layout == signal.AlignedLittle || s.Layout == signal.AlignedBig) && s.Desc.Length > 8 {
				return true
			}
		}
	}
	return false
}

type emitter struct {
	buf strings.Builder
}

func (e *emitter) pf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

func (e *emitter) message(m *Message) {
	name := m.Desc.Name
	t := m.GoName

	e.pf("\n")
	e.pf("// %s is the %s message (ID %s, DLC %d).\n", t, name, hex(uint64(m.Desc.ID)), m.Desc.Length)
	if m.Desc.Description != "" {
		e.pf("//\n")
		for _, line := range commentLines(m.Desc.Description) {
			e.pf("// %s\n", line)
		}
	}
	e.pf("type %s struct {\n", t)
	for _, s := range m.Signals {
		e.pf("\t// %s\n", fieldDoc(s))
		for _, line := range commentLines(s.Desc.Description) {
			e.pf("\t// %s\n", line)
		}
		e.pf("\t%s %s\n", s.GoName, s.GoType)
	}
	e.pf("}\n")

	e.pf("\n")
	e.pf("// %sID is the CAN identifier of the %s message.\n", t, name)
	e.pf("const %sID uint32 = %s\n", t, hex(uint64(m.Desc.ID)))
	e.pf("\n")
	e.pf("// %sDLC is the payload length of %s in bytes.\n", t, name)
	e.pf("const %sDLC = %d\n", t, m.Desc.Length)
	e.pf("\n")
	e.pf("// %sIsExtended reports whether %s uses the 29-bit identifier space.\n", t, name)
	e.pf("const %sIsExtended = %t\n", t, m.Desc.IsExtended)
	if m.Desc.CycleTime > 0 {
		e.pf("\n")
		e.pf("// %sCycleTime is the broadcast period of %s in milliseconds.\n", t, name)
		e.pf("const %sCycleTime uint32 = %d\n", t, m.Desc.CycleTime/time.Millisecond)
	}
	for _, s := range m.Signals {
		for _, vc := range s.Consts {
			e.pf("\n")
			e.pf("// %s is the %s %q value.\n", vc.Name, s.Desc.Name, vc.Doc)
			e.pf("const %s %s = %s\n", vc.Name, s.GoType, vc.Literal)
		}
	}

	e.pf("\n")
	e.pf("// Decode reads the %s signals from data into m.\n", name)
	e.pf("// It returns false without touching m when len(data) != %sDLC.\n", t)
	e.pf("func (m *%s) Decode(data []byte) bool {\n", t)
	e.pf("\tif len(data) != %sDLC {\n", t)
	e.pf("\t\treturn false\n")
	e.pf("\t}\n")
	for _, s := range m.Signals {
		e.decode(s)
	}
	e.pf("\treturn true\n")
	e.pf("}\n")

	e.pf("\n")
	e.pf("// Encode writes the %s signals from m into data.\n", name)
	e.pf("// It returns false without touching data when len(data) != %sDLC.\n", t)
	e.pf("func (m *%s) Encode(data []byte) bool {\n", t)
	e.pf("\tif len(data) != %sDLC {\n", t)
	e.pf("\t\treturn false\n")
	e.pf("\t}\n")
	for _, s := range m.Signals {
		e.encode(s)
	}
	e.pf("\treturn true\n")
	e.pf("}\n")

	e.pf("\n")
	e.pf("// %sFromBytes decodes data into a new %s.\n", t, t)
	e.pf("func %sFromBytes(data []byte) (%s, error) {\n", t, t)
	e.pf("\tvar m %s\n", t)
	e.pf("\tif !m.Decode(data) {\n")
	e.pf("\t\treturn m, fmt.Errorf(\"%s payload must be %%d bytes, got %%d\", %sDLC, len(data))\n", name, t)
	e.pf("\t}\n")
	e.pf("\treturn m, nil\n")
	e.pf("}\n")
}

func (e *emitter) decode(s *Signal) {
	switch s.Layout {
	case signal.SingleBit:
		e.pf("\tm.%s = data[%d]&%s != 0\n", s.GoName, s.Desc.Start/8, hex(uint64(1)<<(s.Desc.Start%8)))
	case signal.AlignedLittle, signal.AlignedBig:
		e.decodeAligned(s)
	case signal.UnalignedLittle:
		e.decodeUnalignedLittle(s)
	case signal.UnalignedBig:
		e.decodeUnalignedBig(s)
	}
}

func (e *emitter) decodeAligned(s *Signal) {
	width := int(s.Desc.Length)
	lo := int(s.Desc.Start / 8)
	raw := fmt.Sprintf("data[%d]", lo)
	if width > 8 {
		raw = fmt.Sprintf("binary.%s.Uint%d(data[%d:%d])", endianPkg(s), width, lo, lo+width/8)
	}
	switch {
	case signal.IsFloatNative(s.Desc.Length, s.Desc.Scale):
		if s.Desc.IsSigned {
			raw = fmt.Sprintf("int%d(%s)", width, raw)
		}
		e.pf("\tm.%s = float32(%s)%s\n", s.GoName, raw, scaleSuffix(s))
	case s.Desc.IsSigned:
		e.pf("\tm.%s = int%d(%s)\n", s.GoName, width, raw)
	default:
		e.pf("\tm.%s = %s\n", s.GoName, raw)
	}
}

func (e *emitter) decodeUnalignedLittle(s *Signal) {
	start, width := uint(s.Desc.Start), uint(s.Desc.Length)
	low, left := start/8, start%8
	high := (start + width - 1) / 8
	right := (start + width) % 8
	t := s.Temp
	if high == low {
		if left > 0 {
			e.pf("\t%s := data[%d] >> %d\n", t, low, left)
		} else {
			e.pf("\t%s := data[%d]\n", t, low)
		}
		e.pf("\t%s &= %s\n", t, hex(maskBits(width)))
		e.assignUnaligned(s, 8)
		return
	}
	tb := tempBits(width)
	tt := fmt.Sprintf("uint%d", tb)
	if left > 0 {
		e.pf("\t%s := %s(data[%d]) >> %d\n", t, tt, low, left)
	} else {
		e.pf("\t%s := %s(data[%d])\n", t, tt, low)
	}
	for o := uint(1); o <= high-low; o++ {
		shift := o*8 - left
		if o == high-low && right > 0 {
			e.pf("\t%s |= %s(data[%d]&%s) << %d\n", t, tt, low+o, hex(maskBits(right)), shift)
		} else {
			e.pf("\t%s |= %s(data[%d]) << %d\n", t, tt, low+o, shift)
		}
	}
	e.assignUnaligned(s, tb)
}

func (e *emitter) decodeUnalignedBig(s *Signal) {
	start, width := uint(s.Desc.Start), uint(s.Desc.Length)
	idx, left := start/8, start%8
	t := s.Temp
	if width <= left+1 {
		if shift := left + 1 - width; shift > 0 {
			e.pf("\t%s := data[%d] >> %d\n", t, idx, shift)
		} else {
			e.pf("\t%s := data[%d]\n", t, idx)
		}
		e.pf("\t%s &= %s\n", t, hex(maskBits(width)))
		e.assignUnaligned(s, 8)
		return
	}
	tb := tempBits(width)
	tt := fmt.Sprintf("uint%d", tb)
	rem := width - (left + 1)
	if left == 7 {
		e.pf("\t%s := %s(data[%d]) << %d\n", t, tt, idx, rem)
	} else {
		e.pf("\t%s := %s(data[%d]&%s) << %d\n", t, tt, idx, hex(maskBits(left+1)), rem)
	}
	for i := idx + 1; rem > 0; i++ {
		if rem < 8 {
			e.pf("\t%s |= %s(data[%d]) >> %d\n", t, tt, i, 8-rem)
			rem = 0
			continue
		}
		rem -= 8
		if rem == 0 {
			e.pf("\t%s |= %s(data[%d])\n", t, tt, i)
		} else {
			e.pf("\t%s |= %s(data[%d]) << %d\n", t, tt, i, rem)
		}
	}
	e.assignUnaligned(s, tb)
}

// assignUnaligned sign-extends the working variable when needed and
// assigns it to the field in its native type. tb is the working
// variable's width in bits.
func (e *emitter) assignUnaligned(s *Signal, tb uint) {
	width := uint(s.Desc.Length)
	t := s.Temp
	if s.Desc.IsSigned {
		ext := ^maskBits(width) & maskBits(tb)
		e.pf("\tif %s&%s != 0 {\n", t, hex(uint64(1)<<(width-1)))
		e.pf("\t\t%s |= %s\n", t, hex(ext))
		e.pf("\t}\n")
	}
	sb := uint(signal.StorageBits(s.Desc.Length))
	switch {
	case signal.IsFloatNative(s.Desc.Length, s.Desc.Scale):
		if s.Desc.IsSigned {
			e.pf("\tm.%s = float32(int%d(%s))%s\n", s.GoName, tb, t, scaleSuffix(s))
		} else {
			e.pf("\tm.%s = float32(%s)%s\n", s.GoName, t, scaleSuffix(s))
		}
	case s.Desc.IsSigned:
		e.pf("\tm.%s = int%d(%s)\n", s.GoName, sb, t)
	case tb > sb:
		e.pf("\tm.%s = uint%d(%s)\n", s.GoName, sb, t)
	default:
		e.pf("\tm.%s = %s\n", s.GoName, t)
	}
}

func (e *emitter) encode(s *Signal) {
	switch s.Layout {
	case signal.SingleBit:
		mask := hex(uint64(1) << (s.Desc.Start % 8))
		e.pf("\tif m.%s {\n", s.GoName)
		e.pf("\t\tdata[%d] |= %s\n", s.Desc.Start/8, mask)
		e.pf("\t} else {\n")
		e.pf("\t\tdata[%d] &^= %s\n", s.Desc.Start/8, mask)
		e.pf("\t}\n")
	case signal.AlignedLittle, signal.AlignedBig:
		e.encodeAligned(s)
	case signal.UnalignedLittle:
		e.encodeUnalignedLittle(s)
	case signal.UnalignedBig:
		e.encodeUnalignedBig(s)
	}
}

func (e *emitter) encodeAligned(s *Signal) {
	width := int(s.Desc.Length)
	lo := int(s.Desc.Start / 8)
	isFloat := signal.IsFloatNative(s.Desc.Length, s.Desc.Scale)
	if isFloat && s.Desc.IsSigned {
		// Negative physical values must truncate through the signed
		// storage type before their bits are reinterpreted.
		e.pf("\t%s := int%d(%s)\n", s.Temp, width, physToRaw(s))
		if width > 8 {
			e.pf("\tbinary.%s.PutUint%d(data[%d:%d], uint%d(%s))\n", endianPkg(s), width, lo, lo+width/8, width, s.Temp)
		} else {
			e.pf("\tdata[%d] = uint8(%s)\n", lo, s.Temp)
		}
		return
	}
	v := fmt.Sprintf("m.%s", s.GoName)
	switch {
	case isFloat && width > 8:
		e.pf("\t%s := uint%d(%s)\n", s.Temp, width, physToRaw(s))
		v = s.Temp
	case isFloat:
		e.pf("\tdata[%d] = uint8(%s)\n", lo, physToRaw(s))
		return
	case s.Desc.IsSigned:
		v = fmt.Sprintf("uint%d(%s)", width, v)
	}
	if width > 8 {
		e.pf("\tbinary.%s.PutUint%d(data[%d:%d], %s)\n", endianPkg(s), width, lo, lo+width/8, v)
	} else {
		e.pf("\tdata[%d] = %s\n", lo, v)
	}
}

func (e *emitter) encodeUnalignedLittle(s *Signal) {
	start, width := uint(s.Desc.Start), uint(s.Desc.Length)
	low, left := start/8, start%8
	high := (start + width - 1) / 8
	right := (start + width) % 8
	t := s.Temp
	if high == low {
		e.pf("\t%s := %s\n", t, rawSource(s, 8))
		if left > 0 {
			e.pf("\t%s <<= %d\n", t, left)
		}
		mask := hex(maskBits(width) << left)
		e.pf("\tdata[%d] = data[%d]&^%s | %s&%s\n", low, low, mask, signedByteTemp(s, t), mask)
		return
	}
	tb := tempBits(width)
	e.pf("\t%s := %s\n", t, rawSource(s, tb))
	if left > 0 {
		mask := hex(uint64(0xff) << left & 0xff)
		e.pf("\tdata[%d] = data[%d]&^%s | uint8(%s<<%d)&%s\n", low, low, mask, t, left, mask)
	} else {
		e.pf("\tdata[%d] = uint8(%s)\n", low, t)
	}
	for o := uint(1); o <= high-low; o++ {
		shift := o*8 - left
		if o == high-low && right > 0 {
			mask := hex(maskBits(right))
			e.pf("\tdata[%d] = data[%d]&^%s | uint8(%s>>%d)&%s\n", low+o, low+o, mask, t, shift, mask)
		} else {
			e.pf("\tdata[%d] = uint8(%s >> %d)\n", low+o, t, shift)
		}
	}
}

func (e *emitter) encodeUnalignedBig(s *Signal) {
	start, width := uint(s.Desc.Start), uint(s.Desc.Length)
	idx, left := start/8, start%8
	t := s.Temp
	if width <= left+1 {
		e.pf("\t%s := %s\n", t, rawSource(s, 8))
		shift := left + 1 - width
		if shift > 0 {
			e.pf("\t%s <<= %d\n", t, shift)
		}
		mask := hex(maskBits(width) << shift)
		e.pf("\tdata[%d] = data[%d]&^%s | %s&%s\n", idx, idx, mask, signedByteTemp(s, t), mask)
		return
	}
	tb := tempBits(width)
	e.pf("\t%s := %s\n", t, rawSource(s, tb))
	rem := width - (left + 1)
	if left == 7 {
		e.pf("\tdata[%d] = uint8(%s >> %d)\n", idx, t, rem)
	} else {
		mask := hex(maskBits(left + 1))
		e.pf("\tdata[%d] = data[%d]&^%s | uint8(%s>>%d)&%s\n", idx, idx, mask, t, rem, mask)
	}
	for i := idx + 1; rem > 0; i++ {
		if rem < 8 {
			shift := 8 - rem
			mask := hex(maskBits(rem) << shift)
			e.pf("\tdata[%d] = data[%d]&^%s | uint8(%s<<%d)&%s\n", i, i, mask, t, shift, mask)
			rem = 0
			continue
		}
		rem -= 8
		if rem == 0 {
			e.pf("\tdata[%d] = uint8(%s)\n", i, t)
		} else {
			e.pf("\tdata[%d] = uint8(%s >> %d)\n", i, t, rem)
		}
	}
}

// rawSource renders the expression seeding an unaligned encode's
// working variable from the field, converting physical values back to
// raw bits first. tb is the working variable's width.
func rawSource(s *Signal, tb uint) string {
	width := s.Desc.Length
	switch {
	case signal.IsFloatNative(width, s.Desc.Scale) && s.Desc.IsSigned:
		// A signed working variable: left shifts and masked right
		// shifts write the same bits as the unsigned walk.
		return fmt.Sprintf("int%d(%s)", tb, physToRaw(s))
	case signal.IsFloatNative(width, s.Desc.Scale):
		return fmt.Sprintf("uint%d(%s)", tb, physToRaw(s))
	case s.Desc.IsSigned:
		return fmt.Sprintf("uint%d(m.%s)", tb, s.GoName)
	case tb > uint(signal.StorageBits(width)):
		return fmt.Sprintf("uint%d(m.%s)", tb, s.GoName)
	default:
		return fmt.Sprintf("m.%s", s.GoName)
	}
}

// signedByteTemp converts a single-byte working variable back to uint8
// in the read-modify-write line when the seed had to stay signed.
func signedByteTemp(s *Signal, t string) string {
	if signal.IsFloatNative(s.Desc.Length, s.Desc.Scale) && s.Desc.IsSigned {
		return fmt.Sprintf("uint8(%s)", t)
	}
	return t
}

// physToRaw renders the scale/offset inversion: the field value minus
// the offset, divided by the scale.
func physToRaw(s *Signal) string {
	op := "-"
	off := s.Desc.Offset
	if off < 0 {
		op = "+"
		off = -off
	}
	return fmt.Sprintf("(m.%s %s %s) / %s", s.GoName, op, formatFloat(off), formatFloat(s.Desc.Scale))
}

// scaleSuffix renders the raw-to-physical tail of a float decode:
// *scale followed by the offset term, which is always written out.
func scaleSuffix(s *Signal) string {
	op := "+"
	off := s.Desc.Offset
	if off < 0 {
		op = "-"
		off = -off
	}
	return fmt.Sprintf("*%s %s %s", formatFloat(s.Desc.Scale), op, formatFloat(off))
}

func fieldDoc(s *Signal) string {
	d := s.Desc
	if d.Length == 1 {
		return fmt.Sprintf("%s: 1 bit at bit %d.", s.GoName, d.Start)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d bits at bit %d, %s, %s", s.GoName, d.Length, d.Start, endianDoc(d.IsBigEndian), signDoc(d.IsSigned))
	if d.Scale != 1 {
		fmt.Fprintf(&b, ", scale %s", formatFloat(d.Scale))
	}
	if d.Offset != 0 {
		fmt.Fprintf(&b, ", offset %s", formatFloat(d.Offset))
	}
	if d.Unit != "" {
		fmt.Fprintf(&b, ", unit %q", d.Unit)
	}
	b.WriteString(".")
	return b.String()
}

func endianDoc(big bool) string {
	if big {
		return "big-endian"
	}
	return "little-endian"
}

func signDoc(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}

func endianPkg(s *Signal) string {
	if s.Layout == signal.AlignedBig {
		return "BigEndian"
	}
	return "LittleEndian"
}

// commentLines splits a schema description into comment lines.
func commentLines(desc string) []string {
	if desc == "" {
		return nil
	}
	return strings.Split(desc, "\n")
}

func tempBits(width uint) uint {
	if tb := uint(signal.StorageBits(uint8(width))); tb > 16 {
		return tb
	}
	return 16
}

func maskBits(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
