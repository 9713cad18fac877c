package dbc

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.einride.tech/can/pkg/descriptor"
)

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

// ToProtoMessageName converts a DBC message name to a protobuf message
// name, e.g. MISC_MESSAGE becomes MiscMessage.
func ToProtoMessageName(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		parts[i] = capitalize(strings.ToLower(part))
	}
	return strings.Join(parts, "")
}

// ToProtoFieldName converts a DBC signal name to a snake_case protobuf
// field name, e.g. EngineSpeed becomes engine_speed.
func ToProtoFieldName(name string) string {
	snake := matchFirstCap.ReplaceAllString(name, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// GetProtoType returns the protobuf scalar type that holds the decoded
// value of a signal: bool for single bits, double once a scale or
// offset makes the value physical, and a sized integer otherwise.
func GetProtoType(signal *descriptor.Signal) string {
	switch {
	case signal.Length == 1:
		return "bool"
	case signal.IsFloat || signal.Scale != 1 || signal.Offset != 0:
		return "double"
	case signal.Length <= 32 && signal.IsSigned:
		return "int32"
	case signal.Length <= 32:
		return "uint32"
	case signal.IsSigned:
		return "int64"
	default:
		return "uint64"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ProtoPackageName derives a protobuf package name from a DBC file
// path, e.g. testdata/Vehicle-Bus.dbc becomes vehicle_bus. Characters
// a proto identifier cannot carry are dropped, and a name that does
// not start with a letter gets a dbc prefix.
func ProtoPackageName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, "-", "_")
	base = strings.ReplaceAll(base, " ", "_")
	var b strings.Builder
	for _, r := range base {
		if r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		name = "dbc" + name
	}
	return name
}

// ProtoFileName derives the .proto file name from a DBC file path,
// keeping the base name's case.
func ProtoFileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".proto"
}
