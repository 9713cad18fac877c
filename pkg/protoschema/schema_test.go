package protoschema

import (
	"testing"

	"go.einride.tech/can/pkg/descriptor"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/dbckit/dbcdata/pkg/dbc"
)

func buildTestbusSchema(t *testing.T) *Schema {
	t.Helper()
	c, err := dbc.NewCompiler("../dbc/testdata/testbus.dbc")
	if err != nil {
		t.Fatalf("NewCompiler: %v", err)
	}
	s, err := New(c.Database())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSchemaFile(t *testing.T) {
	s := buildTestbusSchema(t)
	if got := string(s.File().Package()); got != "testbus" {
		t.Errorf("package = %q, want %q", got, "testbus")
	}
	if got := s.File().Path(); got != "testbus.proto" {
		t.Errorf("path = %q, want %q", got, "testbus.proto")
	}
	if got := s.File().Messages().Len(); got != 12 {
		t.Errorf("message count = %d, want 12", got)
	}
}

func TestSchemaFieldTypes(t *testing.T) {
	s := buildTestbusSchema(t)

	misc, ok := s.Message("MISC_MESSAGE")
	if !ok {
		t.Fatal("MISC_MESSAGE not in schema")
	}
	if got := misc.FullName(); got != "testbus.MiscMessage" {
		t.Errorf("full name = %q, want testbus.MiscMessage", got)
	}
	if got := misc.Fields().Len(); got != 9 {
		t.Errorf("MISC_MESSAGE fields = %d, want 9", got)
	}

	for _, tt := range []struct {
		message string
		field   string
		kind    protoreflect.Kind
	}{
		{"MISC_MESSAGE", "bool_a", protoreflect.BoolKind},
		{"MISC_MESSAGE", "float_a", protoreflect.DoubleKind},
		{"EXTENDED_1", "calib", protoreflect.Uint32Kind},
		{"EXTENDED_1", "scaled", protoreflect.DoubleKind},
		{"EXTENDED_1", "trim", protoreflect.Int32Kind},
		{"SIXTY_FOUR_BIT", "value", protoreflect.Uint64Kind},
		{"SIXTY_FOUR_BIT_SIGNED", "value", protoreflect.Int64Kind},
		{"MUX_STATUS", "selector", protoreflect.Uint32Kind},
		{"MUX_STATUS", "temperature", protoreflect.DoubleKind},
	} {
		md, ok := s.Message(tt.message)
		if !ok {
			t.Errorf("%s not in schema", tt.message)
			continue
		}
		fd := md.Fields().ByName(protoreflect.Name(tt.field))
		if fd == nil {
			t.Errorf("%s has no field %s", tt.message, tt.field)
			continue
		}
		if fd.Kind() != tt.kind {
			t.Errorf("%s.%s kind = %v, want %v", tt.message, tt.field, fd.Kind(), tt.kind)
		}
	}
}

func TestSchemaDynamicRoundTrip(t *testing.T) {
	s := buildTestbusSchema(t)
	md, ok := s.Message("MISC_MESSAGE")
	if !ok {
		t.Fatal("MISC_MESSAGE not in schema")
	}
	fields := md.Fields()

	msg := dynamicpb.NewMessage(md)
	msg.Set(fields.ByName("bool_a"), protoreflect.ValueOfBool(true))
	msg.Set(fields.ByName("float_a"), protoreflect.ValueOfFloat64(20.75))
	data, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back := dynamicpb.NewMessage(md)
	if err := proto.Unmarshal(data, back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Get(fields.ByName("bool_a")).Bool() {
		t.Error("bool_a lost in round trip")
	}
	if got := back.Get(fields.ByName("float_a")).Float(); got != 20.75 {
		t.Errorf("float_a = %v, want 20.75", got)
	}
	if back.Get(fields.ByName("bool_b")).Bool() {
		t.Error("unset bool_b reads true")
	}
}

func TestSchemaDescriptorSet(t *testing.T) {
	s := buildTestbusSchema(t)
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(s.DescriptorSet(), &set); err != nil {
		t.Fatalf("Unmarshal descriptor set: %v", err)
	}
	if len(set.File) != 1 {
		t.Fatalf("descriptor set holds %d files, want 1", len(set.File))
	}
	if got := set.File[0].GetName(); got != "testbus.proto" {
		t.Errorf("file name = %q, want testbus.proto", got)
	}
}

func TestSchemaNameCollisions(t *testing.T) {
	messages := &descriptor.Database{
		SourceFile: "collide.dbc",
		Messages: []*descriptor.Message{
			{Name: "ALIGNED_LE", ID: 1},
			{Name: "Aligned_LE", ID: 2},
		},
	}
	if _, err := New(messages); err == nil {
		t.Error("colliding message names accepted")
	}

	fields := &descriptor.Database{
		SourceFile: "collide.dbc",
		Messages: []*descriptor.Message{{
			Name: "FLAGS",
			ID:   1,
			Signals: []*descriptor.Signal{
				{Name: "Bool_A", Length: 1},
				{Name: "BOOL_A", Length: 1, Start: 1},
			},
		}},
	}
	if _, err := New(fields); err == nil {
		t.Error("colliding field names accepted")
	}
}
