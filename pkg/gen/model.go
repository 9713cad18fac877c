package gen

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"go.einride.tech/can/pkg/descriptor"

	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/signal"
)

// File is the generation model for one output file.
type File struct {
	// Package is the Go package name of the generated file.
	Package string
	// Source is the DBC file the schema came from, for the file header.
	Source string
	// Messages in selection order.
	Messages []*Message
}

// Message is the generation model for one CAN message.
type Message struct {
	Desc    *descriptor.Message
	GoName  string
	Signals []*Signal
}

// Signal is the generation model for one selected signal.
type Signal struct {
	Desc *descriptor.Signal
	// GoName is the struct field name.
	GoName string
	// Temp is the working variable name used in Decode/Encode bodies.
	Temp string
	// Layout selects the codec shape emitted for the signal.
	Layout signal.Layout
	// GoType is the native field type (bool, float32 or a sized integer).
	GoType string
	// Consts are the value-table constants, in raw value order.
	Consts []ValueConst
}

// ValueConst is one named value of a signal's value table, with its
// literal already rendered in the signal's native type.
type ValueConst struct {
	Name    string
	Literal string
	// Doc is the schema description the constant was named after.
	Doc string
}

// Build resolves a selection against a schema and lowers every selected
// message into an emission-ready model. Any naming collision, unknown
// name or out-of-range table value aborts with ErrSchemaMismatch; bit
// placements the codec cannot compile abort with ErrUnsupportedLayout.
func Build(db *descriptor.Database, sel *dbc.Selection) (*File, error) {
	resolved, err := dbc.ResolveSelection(db, sel)
	if err != nil {
		return nil, err
	}
	file := &File{
		Package: packageName(db.SourceFile),
		Source:  db.SourceFile,
	}
	if sel != nil && sel.Package != "" {
		file.Package = sel.Package
	}
	messageNames := make(map[string]string, len(resolved))
	for _, sm := range resolved {
		mm, err := buildMessage(sm)
		if err != nil {
			return nil, err
		}
		if prev, ok := messageNames[mm.GoName]; ok {
			return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
				"messages %s and %s map to the same Go type %s", prev, mm.Desc.Name, mm.GoName)
		}
		messageNames[mm.GoName] = mm.Desc.Name
		file.Messages = append(file.Messages, mm)
	}
	return file, nil
}

func buildMessage(sm *dbc.SelectedMessage) (*Message, error) {
	msg := sm.Message
	if msg.Length > 8 {
		return nil, errors.Wrapf(signal.ErrUnsupportedLayout,
			"message %s: DLC %d exceeds the classic CAN payload", msg.Name, msg.Length)
	}
	mm := &Message{Desc: msg, GoName: goName(msg.Name)}
	if mm.GoName == "" {
		return nil, errors.Wrapf(dbc.ErrSchemaMismatch, "message name %q yields no Go identifier", msg.Name)
	}
	fieldNames := make(map[string]string, len(sm.Signals))
	taken := make(map[string]struct{}, len(sm.Signals))
	constNames := make(map[string]string)
	for _, sig := range sm.Signals {
		fm, err := buildSignal(msg, sig, fieldNames, taken, constNames)
		if err != nil {
			return nil, err
		}
		mm.Signals = append(mm.Signals, fm)
	}
	return mm, nil
}

func buildSignal(
	msg *descriptor.Message,
	sig *descriptor.Signal,
	fieldNames map[string]string,
	taken map[string]struct{},
	constNames map[string]string,
) (*Signal, error) {
	if sig.IsMultiplexer || sig.IsMultiplexed {
		return nil, errors.Wrapf(signal.ErrUnsupportedLayout,
			"%s.%s: multiplexed signals cannot be compiled to a fixed codec", msg.Name, sig.Name)
	}
	if sig.IsFloat {
		return nil, errors.Wrapf(signal.ErrUnsupportedLayout,
			"%s.%s: IEEE-float signals are not supported", msg.Name, sig.Name)
	}
	if err := signal.Validate(sig.Start, sig.Length, msg.Length, sig.IsBigEndian); err != nil {
		return nil, errors.Wrapf(err, "%s.%s", msg.Name, sig.Name)
	}
	fm := &Signal{
		Desc:   sig,
		GoName: goName(sig.Name),
		Layout: signal.Classify(sig.Start, sig.Length, sig.IsBigEndian),
		GoType: signal.GoNativeType(sig.Length, sig.IsSigned, sig.Scale),
	}
	if fm.GoName == "" {
		return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
			"%s.%s: signal name yields no Go identifier", msg.Name, sig.Name)
	}
	if fm.GoName == "Decode" || fm.GoName == "Encode" {
		return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
			"%s.%s: signal collides with the generated %s method", msg.Name, sig.Name, fm.GoName)
	}
	if prev, ok := fieldNames[fm.GoName]; ok {
		return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
			"%s: signals %s and %s map to the same field %s", msg.Name, prev, sig.Name, fm.GoName)
	}
	fieldNames[fm.GoName] = sig.Name
	fm.Temp = tempName(fm.GoName, taken)
	for _, vd := range sig.ValueDescriptions {
		part := constPart(vd.Description)
		if part == "" {
			return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
				"%s.%s: value description %q yields no constant name", msg.Name, sig.Name, vd.Description)
		}
		name := goName(msg.Name) + "_" + constPart(sig.Name) + "_" + part
		if prev, ok := constNames[name]; ok {
			return nil, errors.Wrapf(dbc.ErrSchemaMismatch,
				"%s.%s: value descriptions %q and %q map to the same constant %s",
				msg.Name, sig.Name, prev, vd.Description, name)
		}
		constNames[name] = vd.Description
		literal, err := valueLiteral(msg, sig, vd)
		if err != nil {
			return nil, err
		}
		fm.Consts = append(fm.Consts, ValueConst{Name: name, Literal: literal, Doc: vd.Description})
	}
	return fm, nil
}

// valueLiteral renders a table value in the signal's native type,
// rejecting values an integer field cannot represent. Scaled signals
// are float-typed, so every table value has a representation there.
func valueLiteral(msg *descriptor.Message, sig *descriptor.Signal, vd *descriptor.ValueDescription) (string, error) {
	v := vd.Value
	width := uint(sig.Length)
	if sig.Length == 1 {
		switch v {
		case 0:
			return "false", nil
		case 1:
			return "true", nil
		}
		return "", errors.Wrapf(dbc.ErrSchemaMismatch,
			"%s.%s: value %d of %q does not fit a 1-bit signal", msg.Name, sig.Name, v, vd.Description)
	}
	if signal.IsFloatNative(sig.Length, sig.Scale) {
		return strconv.FormatInt(v, 10), nil
	}
	if sig.IsSigned {
		if width < 64 {
			min := -(int64(1) << (width - 1))
			max := int64(1)<<(width-1) - 1
			if v < min || v > max {
				return "", errors.Wrapf(dbc.ErrSchemaMismatch,
					"%s.%s: value %d of %q does not fit %d signed bits", msg.Name, sig.Name, v, vd.Description, width)
			}
		}
	} else {
		if v < 0 || width < 64 && v > int64(1)<<width-1 {
			return "", errors.Wrapf(dbc.ErrSchemaMismatch,
				"%s.%s: value %d of %q does not fit %d unsigned bits", msg.Name, sig.Name, v, vd.Description, width)
		}
	}
	return strconv.FormatInt(v, 10), nil
}
