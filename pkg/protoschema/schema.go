package protoschema

import (
	"github.com/cockroachdb/errors"
	"go.einride.tech/can/pkg/descriptor"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/dbckit/dbcdata/pkg/dbc"
)

// Schema is the dynamic protobuf view of one DBC database: a proto3
// file with one message per CAN message and one field per signal,
// typed the way the .proto emitter types them (bool for single bits,
// double once scale or offset applies, sized integers otherwise).
type Schema struct {
	file     protoreflect.FileDescriptor
	fdSet    []byte
	messages map[string]protoreflect.MessageDescriptor
}

// New builds the file descriptor for a database. Names that collide
// after proto mangling (two messages or two fields landing on one
// identifier) surface here as errors.
func New(db *descriptor.Database) (*Schema, error) {
	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(dbc.ProtoFileName(db.SourceFile)),
		Package: proto.String(dbc.ProtoPackageName(db.SourceFile)),
		Syntax:  proto.String("proto3"),
	}
	for _, m := range db.Messages {
		dp := &descriptorpb.DescriptorProto{
			Name: proto.String(dbc.ToProtoMessageName(m.Name)),
		}
		for i, s := range m.Signals {
			dp.Field = append(dp.Field, &descriptorpb.FieldDescriptorProto{
				Name:   proto.String(dbc.ToProtoFieldName(s.Name)),
				Number: proto.Int32(int32(i + 1)),
				Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				Type:   fieldType(s).Enum(),
			})
		}
		fd.MessageType = append(fd.MessageType, dp)
	}

	file, err := protodesc.NewFile(fd, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build proto descriptor for %s", db.SourceFile)
	}
	set, err := proto.Marshal(&descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{fd},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal descriptor set")
	}

	s := &Schema{
		file:     file,
		fdSet:    set,
		messages: make(map[string]protoreflect.MessageDescriptor, len(db.Messages)),
	}
	for _, m := range db.Messages {
		md := file.Messages().ByName(protoreflect.Name(dbc.ToProtoMessageName(m.Name)))
		if md == nil {
			return nil, errors.Newf("message %s missing from built descriptor", m.Name)
		}
		s.messages[m.Name] = md
	}
	return s, nil
}

// File returns the built file descriptor.
func (s *Schema) File() protoreflect.FileDescriptor { return s.file }

// DescriptorSet returns the serialized FileDescriptorSet holding the
// database's proto file. MCAP protobuf schemas carry these bytes.
func (s *Schema) DescriptorSet() []byte { return s.fdSet }

// Message returns the descriptor for a CAN message by its DBC name.
func (s *Schema) Message(name string) (protoreflect.MessageDescriptor, bool) {
	md, ok := s.messages[name]
	return md, ok
}

func fieldType(s *descriptor.Signal) descriptorpb.FieldDescriptorProto_Type {
	switch dbc.GetProtoType(s) {
	case "bool":
		return descriptorpb.FieldDescriptorProto_TYPE_BOOL
	case "double":
		return descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	case "int32":
		return descriptorpb.FieldDescriptorProto_TYPE_INT32
	case "uint32":
		return descriptorpb.FieldDescriptorProto_TYPE_UINT32
	case "int64":
		return descriptorpb.FieldDescriptorProto_TYPE_INT64
	default:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT64
	}
}
