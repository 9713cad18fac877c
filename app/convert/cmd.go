package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dbckit/dbcdata/pkg/cli"
	"github.com/dbckit/dbcdata/pkg/codec"
	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/mcap"
	"github.com/dbckit/dbcdata/pkg/pcapng"
	"github.com/dbckit/dbcdata/pkg/protoschema"
)

type converter struct {
	dbcFile    string
	pcapngFile string
	mcapFile   string
}

func NewCommand() *cobra.Command {
	s := &converter{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert CAN frames captured with pcapng to MCAP using a DBC schema.",
		Long: `Convert pcapng captures of a CAN bus into MCAP.

Frames are decoded against the DBC schema and written as dynamic
protobuf messages, one channel per CAN message. Frames whose IDs the
schema does not know are counted and skipped.`,
		Example: `  # Convert a capture to MCAP
  dbcdata convert --dbc-file vehicle.dbc --pcapng-file capture.pcapng --mcap-file out.mcap`,
		RunE: cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.dbcFile, "dbc-file", s.dbcFile, "DBC schema file")
	cmd.Flags().StringVar(&s.pcapngFile, "pcapng-file", s.pcapngFile, "pcapng capture to read")
	cmd.Flags().StringVar(&s.mcapFile, "mcap-file", s.mcapFile, "MCAP file to write")

	cmd.MarkFlagRequired("dbc-file")
	cmd.MarkFlagRequired("pcapng-file")
	cmd.MarkFlagRequired("mcap-file")

	return cmd
}

func (s *converter) run(ctx context.Context, input cli.Input) error {
	input.Logger.Info("Starting pcapng to MCAP conversion",
		"dbc_file", s.dbcFile,
		"pcapng_file", s.pcapngFile,
		"mcap_file", s.mcapFile,
	)

	compiler, err := dbc.NewCompiler(s.dbcFile)
	if err != nil {
		return errors.Wrap(err, "compile DBC schema")
	}
	for _, warn := range compiler.Errs() {
		input.Logger.Warn("Schema metadata issue", "issue", warn.Error())
	}
	db := compiler.Database()
	input.Logger.Info(fmt.Sprintf("Schema carries %d messages", len(db.Messages)))

	cod, err := codec.New(db)
	if err != nil {
		return errors.Wrap(err, "build codec")
	}
	schema, err := protoschema.New(db)
	if err != nil {
		return errors.Wrap(err, "build proto schema")
	}

	capture, err := os.Open(s.pcapngFile)
	if err != nil {
		return errors.Wrap(err, "open capture")
	}
	defer capture.Close()

	reader, err := pcapng.NewReader(capture)
	if err != nil {
		return errors.Wrap(err, "open pcapng reader")
	}

	out, err := os.Create(s.mcapFile)
	if err != nil {
		return errors.Wrap(err, "create MCAP file")
	}
	defer out.Close()

	writer, err := mcap.NewWriter(out, schema)
	if err != nil {
		return errors.Wrap(err, "create MCAP writer")
	}
	defer writer.Close()

	input.Logger.Info("Converting CAN frames...")
	var (
		frameCount      int
		messageCount    int
		skippedCount    int
		outOfRangeCount int
		msgCounts       = make(map[uint32]int)
		startTime       = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "conversion cancelled")
		default:
		}

		f, err := reader.ReadNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrap(err, "read frame")
		}
		frameCount++

		dm, err := cod.Decode(f)
		if err != nil {
			// IDs outside the schema and malformed frames are skipped.
			skippedCount++
			continue
		}

		for name, ds := range dm.Signals {
			v := codec.Numeric(ds)
			if !codec.InRange(ds.Signal, v) {
				outOfRangeCount++
				input.Logger.Debug("Signal out of range",
					"can_id", fmt.Sprintf("0x%03X", dm.ID),
					"message", dm.Name,
					"signal", name,
					"value", codec.FormatValue(v, ds.Signal.Unit),
					"min", ds.Signal.Min,
					"max", ds.Signal.Max,
				)
			}
		}

		if err := writer.WriteDecoded(dm); err != nil {
			return errors.Wrap(err, "write message")
		}
		messageCount++
		msgCounts[dm.ID]++

		if frameCount%10000 == 0 {
			input.Logger.Info(fmt.Sprintf("Progress: %d frames read, %d messages decoded, %d skipped",
				frameCount, messageCount, skippedCount))
		}
	}

	duration := time.Since(startTime)
	input.Logger.Info("Conversion completed",
		"total_frames", frameCount,
		"decoded_messages", messageCount,
		"skipped_frames", skippedCount,
		"out_of_range_signals", outOfRangeCount,
		"output_file", s.mcapFile,
		"duration", duration,
	)

	if len(msgCounts) > 0 {
		input.Logger.Info(fmt.Sprintf("Saw %d distinct message types", len(msgCounts)))
		for id, count := range msgCounts {
			if m, ok := cod.Message(id); ok {
				input.Logger.Debug(fmt.Sprintf("  0x%03X (%s): %d frames", id, m.Name, count))
			} else {
				input.Logger.Debug(fmt.Sprintf("  0x%03X: %d frames", id, count))
			}
		}
	}

	return nil
}
