package gen

import "testing"

func TestGoName(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"ALIGNED_LE", "AlignedLe"},
		{"MISC_MESSAGE", "MiscMessage"},
		{"SIXTY_FOUR_BIT_BE", "SixtyFourBitBe"},
		{"EXTENDED_1", "Extended1"},
		{"Bool_A", "BoolA"},
		{"Unsigned2A", "Unsigned2A"},
		{"SixtyFourBit", "SixtyFourBit"},
		{"Float_A", "FloatA"},
		{"engine.rpm", "EngineRpm"},
		{"wheel speed FL", "WheelSpeedFl"},
		{"4WD_MODE", "X4wdMode"},
		{"__", ""},
	} {
		if got := goName(tt.in); got != tt.want {
			t.Errorf("goName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConstPart(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"ON", "ON"},
		{"Low Range", "LOW_RANGE"},
		{"N/A (sensor fault)", "N_A_SENSOR_FAULT"},
		{"100%", "100"},
		{"---", ""},
	} {
		if got := constPart(tt.in); got != tt.want {
			t.Errorf("constPart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTempName(t *testing.T) {
	taken := make(map[string]struct{})
	if got := tempName("Speed", taken); got != "speed" {
		t.Errorf("tempName(Speed) = %q, want speed", got)
	}
	// A second field lowercasing to the same identifier must not reuse it.
	if got := tempName("Speed", taken); got != "speedRaw" {
		t.Errorf("second tempName(Speed) = %q, want speedRaw", got)
	}
	if got := tempName("Type", taken); got != "typeRaw" {
		t.Errorf("tempName(Type) = %q, want typeRaw", got)
	}
	if got := tempName("Data", taken); got != "dataRaw" {
		t.Errorf("tempName(Data) = %q, want dataRaw", got)
	}
	if got := tempName("M", taken); got != "mRaw" {
		t.Errorf("tempName(M) = %q, want mRaw", got)
	}
}

func TestPackageName(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"testdata/testbus.dbc", "testbus"},
		{"/tmp/Vehicle-Bus_2.dbc", "vehiclebus2"},
		{"7layers.dbc", "dbc7layers"},
		{"....dbc", "dbc"},
	} {
		if got := packageName(tt.in); got != tt.want {
			t.Errorf("packageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
