package testbus

import (
	"bytes"
	"testing"
)

func TestAlignedLeDecode(t *testing.T) {
	var m AlignedLe
	data := []byte{0xfe, 0x55, 0x01, 0x20, 0x34, 0x56, 0x78, 0x9a}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Signed8 != -2 {
		t.Errorf("Signed8 = %d, want -2", m.Signed8)
	}
	if m.Unsigned8 != 0x55 {
		t.Errorf("Unsigned8 = %#x, want 0x55", m.Unsigned8)
	}
	if m.Unsigned16 != 0x2001 {
		t.Errorf("Unsigned16 = %#x, want 0x2001", m.Unsigned16)
	}
	if m.Unsigned32 != 0x9a785634 {
		t.Errorf("Unsigned32 = %#x, want 0x9a785634", m.Unsigned32)
	}
}

func TestAlignedLeEncode(t *testing.T) {
	m := AlignedLe{Signed8: -99, Unsigned8: 0x33, Unsigned16: 0x78bc, Unsigned32: 0x01020304}
	data := make([]byte, 8)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x9d, 0x33, 0xbc, 0x78, 0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestAlignedBeDecode(t *testing.T) {
	var m AlignedBe
	data := []byte{0xaa, 0x55, 0x01, 0x20, 0x34, 0x56, 0x78, 0x9a}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Signed8 != -86 {
		t.Errorf("Signed8 = %d, want -86", m.Signed8)
	}
	if m.Unsigned8 != 0x55 {
		t.Errorf("Unsigned8 = %#x, want 0x55", m.Unsigned8)
	}
	if m.Unsigned16 != 0x0120 {
		t.Errorf("Unsigned16 = %#x, want 0x0120", m.Unsigned16)
	}
	if m.Unsigned32 != 0x3456789a {
		t.Errorf("Unsigned32 = %#x, want 0x3456789a", m.Unsigned32)
	}
}

func TestAlignedBeEncode(t *testing.T) {
	m := AlignedBe{Signed8: 12, Unsigned8: 0x77, Unsigned16: 0x78bc, Unsigned32: 0x1234fedc}
	data := make([]byte, 8)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x0c, 0x77, 0x78, 0xbc, 0x12, 0x34, 0xfe, 0xdc}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestUnalignedUnsignedLeDecode(t *testing.T) {
	var m UnalignedUnsignedLe
	data := []byte{0xf5, 0x71, 0x20, 0x31, 0xf0, 0xa1, 0x73, 0xfd}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Unsigned2 != 1 {
		t.Errorf("Unsigned2 = %d, want 1", m.Unsigned2)
	}
	if m.Unsigned3 != 6 {
		t.Errorf("Unsigned3 = %d, want 6", m.Unsigned3)
	}
	if m.Unsigned23 != 0x7c0c48 {
		t.Errorf("Unsigned23 = %#x, want 0x7c0c48", m.Unsigned23)
	}
	if m.Unsigned15 != 0x2e74 {
		t.Errorf("Unsigned15 = %#x, want 0x2e74", m.Unsigned15)
	}
	if m.Unsigned2A != 2 {
		t.Errorf("Unsigned2A = %d, want 2", m.Unsigned2A)
	}
}

// Encoding into a buffer of ones proves every signal masks exactly its
// own bits and leaves the unused ones alone.
func TestUnalignedUnsignedLeEncodePreservesNeighbors(t *testing.T) {
	m := UnalignedUnsignedLe{
		Unsigned2:  2,
		Unsigned3:  2,
		Unsigned23: 0x3c0c49,
		Unsigned15: 0x5af5,
		Unsigned2A: 3,
	}
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0xff, 0xd6, 0x27, 0x31, 0xf0, 0xae, 0xd7, 0xfe}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestUnalignedUnsignedLeRoundTrip(t *testing.T) {
	in := UnalignedUnsignedLe{
		Unsigned2:  3,
		Unsigned3:  5,
		Unsigned23: 0x55aa55,
		Unsigned15: 0x2aaa,
		Unsigned2A: 1,
	}
	data := make([]byte, 8)
	if !in.Encode(data) {
		t.Fatal("encode failed")
	}
	var out UnalignedUnsignedLe
	if !out.Decode(data) {
		t.Fatal("decode failed")
	}
	if in != out {
		t.Errorf("round trip %+v -> %+v", in, out)
	}
}

func TestUnalignedUnsignedBeDecode(t *testing.T) {
	var m UnalignedUnsignedBe
	data := []byte{0xfd, 0xe5, 0xa1, 0xf0, 0x31, 0xf8, 0x70, 0x77}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Unsigned2 != 3 {
		t.Errorf("Unsigned2 = %d, want 3", m.Unsigned2)
	}
	if m.Unsigned3 != 2 {
		t.Errorf("Unsigned3 = %d, want 2", m.Unsigned3)
	}
	if m.Unsigned23 != 0x1f031f {
		t.Errorf("Unsigned23 = %#x, want 0x1f031f", m.Unsigned23)
	}
	if m.Unsigned15 != 0x4383 {
		t.Errorf("Unsigned15 = %#x, want 0x4383", m.Unsigned15)
	}
	if m.Unsigned2A != 3 {
		t.Errorf("Unsigned2A = %d, want 3", m.Unsigned2A)
	}
}

func TestUnalignedUnsignedBeEncode(t *testing.T) {
	m := UnalignedUnsignedBe{
		Unsigned2:  3,
		Unsigned3:  5,
		Unsigned23: 0x2a5a5a,
		Unsigned15: 0x5a7e,
		Unsigned2A: 1,
	}
	data := make([]byte, 8)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x00, 0x0b, 0x82, 0xa5, 0xa5, 0xab, 0x4f, 0xc1}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
	var back UnalignedUnsignedBe
	if !back.Decode(data) {
		t.Fatal("decode failed")
	}
	if back != m {
		t.Errorf("round trip %+v -> %+v", m, back)
	}
}

func TestUnalignedSignedLeDecode(t *testing.T) {
	var m UnalignedSignedLe
	data := []byte{0xf7, 0x70, 0x20, 0x31, 0xf0, 0xa1, 0x73, 0xfd}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Signed2 != 0 {
		t.Errorf("Signed2 = %d, want 0", m.Signed2)
	}
	if m.Signed3 != -2 {
		t.Errorf("Signed3 = %d, want -2", m.Signed3)
	}
	if m.Signed23 != -259000 {
		t.Errorf("Signed23 = %d, want -259000", m.Signed23)
	}
	if m.Signed15 != 11892 {
		t.Errorf("Signed15 = %d, want 11892", m.Signed15)
	}
	if m.Signed2A != -2 {
		t.Errorf("Signed2A = %d, want -2", m.Signed2A)
	}
}

func TestUnalignedSignedLeEncode(t *testing.T) {
	m := UnalignedSignedLe{
		Signed2:  -1,
		Signed3:  -2,
		Signed23: -259000,
		Signed15: 11892,
		Signed2A: -2,
	}
	data := make([]byte, 8)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x00, 0x33, 0x20, 0x31, 0xf0, 0xa1, 0x73, 0x05}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestUnalignedSignedBeDecode(t *testing.T) {
	var m UnalignedSignedBe
	data := []byte{0xfd, 0xe5, 0xa1, 0xf0, 0x31, 0xf8, 0x70, 0x77}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Signed2 != -1 {
		t.Errorf("Signed2 = %d, want -1", m.Signed2)
	}
	if m.Signed3 != 2 {
		t.Errorf("Signed3 = %d, want 2", m.Signed3)
	}
	if m.Signed23 != 2032415 {
		t.Errorf("Signed23 = %d, want 2032415", m.Signed23)
	}
	if m.Signed15 != -15485 {
		t.Errorf("Signed15 = %d, want -15485", m.Signed15)
	}
	if m.Signed2A != -1 {
		t.Errorf("Signed2A = %d, want -1", m.Signed2A)
	}
}

func TestUnalignedSignedBeRoundTrip(t *testing.T) {
	in := UnalignedSignedBe{
		Signed2:  -2,
		Signed3:  3,
		Signed23: -1,
		Signed15: -16384,
		Signed2A: 1,
	}
	data := make([]byte, 8)
	if !in.Encode(data) {
		t.Fatal("encode failed")
	}
	var out UnalignedSignedBe
	if !out.Decode(data) {
		t.Fatal("decode failed")
	}
	if in != out {
		t.Errorf("round trip %+v -> %+v", in, out)
	}
}

func TestSixtyFourBitDecode(t *testing.T) {
	data := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	var le SixtyFourBit
	if !le.Decode(data) {
		t.Fatal("LE decode failed")
	}
	if le.Value != 0x8877665544332211 {
		t.Errorf("LE value = %#x, want 0x8877665544332211", le.Value)
	}
	var be SixtyFourBitBe
	if !be.Decode(data) {
		t.Fatal("BE decode failed")
	}
	if be.Value != 0x1122334455667788 {
		t.Errorf("BE value = %#x, want 0x1122334455667788", be.Value)
	}
	var signed SixtyFourBitSigned
	if !signed.Decode(data) {
		t.Fatal("signed decode failed")
	}
	if signed.Value != -8613303245920329199 {
		t.Errorf("signed value = %d, want -8613303245920329199", signed.Value)
	}
}

func TestSixtyFourBitRoundTrip(t *testing.T) {
	in := SixtyFourBitSigned{Value: -1}
	data := make([]byte, 8)
	if !in.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want all ff", data)
	}
	var out SixtyFourBitSigned
	if !out.Decode(data) {
		t.Fatal("decode failed")
	}
	if out.Value != -1 {
		t.Errorf("round trip value = %d, want -1", out.Value)
	}
}

func TestMiscMessageDecode(t *testing.T) {
	var m MiscMessage
	if !m.Decode([]byte{0x82, 0x20}) {
		t.Fatal("decode failed")
	}
	if m.BoolA {
		t.Error("BoolA should be false")
	}
	if !m.BoolH {
		t.Error("BoolH should be true")
	}
	if m.FloatA != 16.25 {
		t.Errorf("FloatA = %v, want 16.25", m.FloatA)
	}
}

func TestMiscMessageEncode(t *testing.T) {
	m := MiscMessage{BoolA: true, BoolH: true, FloatA: 20.75}
	data := make([]byte, 2)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x81, 0x29}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

// Clearing a flag must not disturb the other seven bits of its byte.
func TestMiscMessageBitIsolation(t *testing.T) {
	m := MiscMessage{BoolA: false, BoolH: true, FloatA: 0.25}
	data := []byte{0xff, 0xff}
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0xfe, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestExtended1Decode(t *testing.T) {
	var m Extended1
	data := []byte{0x40, 0x01, 0x64, 0x14, 0x00, 0x00, 0x00, 0x00}
	if !m.Decode(data) {
		t.Fatal("decode failed")
	}
	if m.Calib != 5 {
		t.Errorf("Calib = %d, want 5", m.Calib)
	}
	if m.Scaled != 35.0 {
		t.Errorf("Scaled = %v, want 35", m.Scaled)
	}
	if m.Trim != -3 {
		t.Errorf("Trim = %d, want -3", m.Trim)
	}
}

func TestExtended1Encode(t *testing.T) {
	m := Extended1{Calib: 0x55, Scaled: 22.5, Trim: 2}
	data := make([]byte, 8)
	if !m.Encode(data) {
		t.Fatal("encode failed")
	}
	want := []byte{0x40, 0x15, 0x32, 0x08, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded % x, want % x", data, want)
	}
}

func TestLengthGuard(t *testing.T) {
	m := AlignedLe{Signed8: 1, Unsigned16: 2}
	short := []byte{0x01, 0x02, 0x03}
	if m.Decode(short) {
		t.Error("decode of a short buffer must fail")
	}
	if m.Signed8 != 1 || m.Unsigned16 != 2 {
		t.Error("failed decode must not touch fields")
	}
	if m.Encode(short) {
		t.Error("encode into a short buffer must fail")
	}
	if !bytes.Equal(short, []byte{0x01, 0x02, 0x03}) {
		t.Error("failed encode must not touch the buffer")
	}

	var misc MiscMessage
	if misc.Decode(make([]byte, 8)) {
		t.Error("MISC_MESSAGE decode must insist on its own DLC")
	}
}

func TestFromBytes(t *testing.T) {
	m, err := MiscMessageFromBytes([]byte{0x01, 0x00})
	if err != nil {
		t.Fatalf("MiscMessageFromBytes: %v", err)
	}
	if !m.BoolA || m.BoolH {
		t.Errorf("decoded %+v", m)
	}
	if _, err := MiscMessageFromBytes([]byte{0x01}); err == nil {
		t.Error("expected a length error")
	}
}

func TestMessageConstants(t *testing.T) {
	if MiscMessageID != 0x1fff {
		t.Errorf("MiscMessageID = %#x", uint32(MiscMessageID))
	}
	if Extended1ID != 0x123456 {
		t.Errorf("Extended1ID = %#x", uint32(Extended1ID))
	}
	if !Extended1IsExtended {
		t.Error("Extended1IsExtended should be true")
	}
	if AlignedLeIsExtended {
		t.Error("AlignedLeIsExtended should be false")
	}
	if MiscMessageCycleTime != 100 {
		t.Errorf("MiscMessageCycleTime = %d", uint32(MiscMessageCycleTime))
	}
	if SixtyFourBitSignedCycleTime != 2000 {
		t.Errorf("SixtyFourBitSignedCycleTime = %d", uint32(SixtyFourBitSignedCycleTime))
	}
	if data := make([]byte, MiscMessageDLC); len(data) != 2 {
		t.Error("DLC constant should size buffers directly")
	}
}

func TestValueConstants(t *testing.T) {
	if !MiscMessage_BOOL_A_ON || MiscMessage_BOOL_A_OFF {
		t.Error("Bool_A table constants are wrong")
	}
	if MiscMessage_FLOAT_A_PI != 31415 || MiscMessage_FLOAT_A_E != 27182 {
		t.Error("Float_A table constants are wrong")
	}
	if UnalignedUnsignedBe_UNSIGNED15_TEST != 17283 {
		t.Errorf("UNSIGNED15_TEST = %d", uint16(UnalignedUnsignedBe_UNSIGNED15_TEST))
	}
	if UnalignedUnsignedBe_UNSIGNED15_LOW_RANGE != 100 {
		t.Errorf("UNSIGNED15_LOW_RANGE = %d", uint16(UnalignedUnsignedBe_UNSIGNED15_LOW_RANGE))
	}
}
