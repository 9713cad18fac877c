package signal

// StorageBits returns the width in bits of the smallest integer container
// holding a field of the given width. Width 1 is boolean and has no
// integer container; callers special-case it before asking.
func StorageBits(width uint8) uint8 {
	switch {
	case width <= 8:
		return 8
	case width <= 16:
		return 16
	case width <= 32:
		return 32
	default:
		return 64
	}
}

// GoStorageType names the Go integer type raw bits are assembled into.
func GoStorageType(width uint8, signed bool) string {
	bits := StorageBits(width)
	if signed {
		switch bits {
		case 8:
			return "int8"
		case 16:
			return "int16"
		case 32:
			return "int32"
		}
		return "int64"
	}
	switch bits {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	case 32:
		return "uint32"
	}
	return "uint64"
}

// GoNativeType names the Go type of a decoded field. One-bit fields are
// boolean no matter what else the schema says about them, and only a
// non-unit scale promotes a field to floating point; an offset on an
// otherwise unscaled integer signal does not.
func GoNativeType(width uint8, signed bool, scale float64) string {
	switch {
	case width == 1:
		return "bool"
	case scale != 1:
		return "float32"
	default:
		return GoStorageType(width, signed)
	}
}

// IsFloatNative reports whether decode produces a scaled floating point
// value for this field.
func IsFloatNative(width uint8, scale float64) bool {
	return width != 1 && scale != 1
}
