package mcap

import (
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/foxglove/mcap/go/mcap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/dbckit/dbcdata/pkg/codec"
	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/protoschema"
)

// Writer writes decoded CAN messages into an MCAP file.
//
// Channel granularity is one channel per CAN message, with topics
// named /can/<MessageName>. Each channel carries a protobuf schema
// holding the database's descriptor set, registered lazily on the
// first frame of that message. Channel metadata records the hex CAN
// ID and the extended flag. Log and publish times come from the
// capture timestamp.
type Writer struct {
	mu         sync.Mutex
	writer     *mcap.Writer
	schema     *protoschema.Schema
	channels   map[string]uint16
	nextSchema uint16
	nextChan   uint16
}

// NewWriter initializes a chunked, ZSTD-compressed MCAP writer. The
// provided io.Writer is not closed here.
func NewWriter(out io.Writer, schema *protoschema.Schema) (*Writer, error) {
	w, err := mcap.NewWriter(out, &mcap.WriterOptions{
		Chunked:     true,
		ChunkSize:   2 * 1024 * 1024,
		Compression: mcap.CompressionZSTD,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create MCAP writer")
	}
	if err := w.WriteHeader(&mcap.Header{
		Profile: "",
		Library: "dbcdata",
	}); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	return &Writer{
		writer:   w,
		schema:   schema,
		channels: make(map[string]uint16),
	}, nil
}

// ensureChannel registers the schema and channel for a message on
// first use and returns the channel ID.
func (w *Writer) ensureChannel(dm *codec.DecodedMessage, md protoreflect.MessageDescriptor) (uint16, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if id, ok := w.channels[dm.Name]; ok {
		return id, nil
	}

	w.nextSchema++
	schemaID := w.nextSchema
	if err := w.writer.WriteSchema(&mcap.Schema{
		ID:       schemaID,
		Name:     string(md.FullName()),
		Encoding: "protobuf",
		Data:     w.schema.DescriptorSet(),
	}); err != nil {
		return 0, errors.Wrapf(err, "write schema for %s", dm.Name)
	}

	w.nextChan++
	chID := w.nextChan
	if err := w.writer.WriteChannel(&mcap.Channel{
		ID:              chID,
		SchemaID:        schemaID,
		Topic:           "/can/" + dm.Name,
		MessageEncoding: "protobuf",
		Metadata: map[string]string{
			"can_id":      fmt.Sprintf("0x%X", dm.ID),
			"is_extended": fmt.Sprintf("%t", dm.IsExtended),
		},
	}); err != nil {
		return 0, errors.Wrapf(err, "write channel /can/%s", dm.Name)
	}
	w.channels[dm.Name] = chID
	return chID, nil
}

// WriteDecoded writes one decoded message as a dynamic protobuf
// payload on its message channel.
func (w *Writer) WriteDecoded(dm *codec.DecodedMessage) error {
	md, ok := w.schema.Message(dm.Name)
	if !ok {
		return errors.Newf("message %s not in schema", dm.Name)
	}
	chID, err := w.ensureChannel(dm, md)
	if err != nil {
		return err
	}

	msg := dynamicpb.NewMessage(md)
	fields := md.Fields()
	for name, ds := range dm.Signals {
		fd := fields.ByName(protoreflect.Name(dbc.ToProtoFieldName(name)))
		if fd == nil {
			continue
		}
		msg.Set(fd, fieldValue(fd, ds))
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", dm.Name)
	}

	ts := uint64(dm.Timestamp.UnixNano())
	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Wrapf(w.writer.WriteMessage(&mcap.Message{
		ChannelID:   chID,
		Sequence:    0,
		LogTime:     ts,
		PublishTime: ts,
		Data:        data,
	}), "write %s", dm.Name)
}

// fieldValue converts a decoded signal into the field's protobuf
// value: the physical value on double fields when present, the typed
// raw value otherwise.
func fieldValue(fd protoreflect.FieldDescriptor, ds codec.DecodedSignal) protoreflect.Value {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		v, _ := ds.Raw.(bool)
		return protoreflect.ValueOfBool(v)
	case protoreflect.DoubleKind:
		return protoreflect.ValueOfFloat64(codec.Numeric(ds))
	case protoreflect.Int32Kind:
		v, _ := ds.Raw.(int64)
		return protoreflect.ValueOfInt32(int32(v))
	case protoreflect.Int64Kind:
		v, _ := ds.Raw.(int64)
		return protoreflect.ValueOfInt64(v)
	case protoreflect.Uint32Kind:
		v, _ := ds.Raw.(uint64)
		return protoreflect.ValueOfUint32(uint32(v))
	default:
		v, _ := ds.Raw.(uint64)
		return protoreflect.ValueOfUint64(v)
	}
}

// Close finalizes the MCAP file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writer.Close()
}
