package proto

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.einride.tech/can/pkg/descriptor"

	"github.com/dbckit/dbcdata/pkg/cli"
	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/protolint"
)

//go:embed dbc_to_proto.tmpl
var defaultTemplate string

type protoGen struct {
	dbcFile      string
	templateFile string
	outputDir    string
	lint         bool
	format       bool
}

func NewCommand() *cobra.Command {
	s := &protoGen{
		outputDir: "proto",
	}

	cmd := &cobra.Command{
		Use:   "proto",
		Short: "Emit a .proto schema mirroring a DBC database.",
		Long: `Emit a proto3 file with one message per CAN message, fields
typed the way decoded values are typed: bool for single bits, double
once scale or offset applies, sized integers otherwise. Messages keep
their schema order.`,
		Example: `  # Emit vehicle.proto under proto/
  dbcdata proto --dbc-file vehicle.dbc

  # Emit, format and lint
  dbcdata proto --dbc-file vehicle.dbc --format --lint`,
		RunE: cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.dbcFile, "dbc-file", s.dbcFile, "DBC schema file")
	cmd.Flags().StringVar(&s.templateFile, "template", s.templateFile, "override the built-in proto template")
	cmd.Flags().StringVar(&s.outputDir, "output-dir", s.outputDir, "directory the .proto file is written under")
	cmd.Flags().BoolVar(&s.lint, "lint", false, "lint the emitted file with buf and protolint")
	cmd.Flags().BoolVar(&s.format, "format", false, "format the emitted file with buf")

	cmd.MarkFlagRequired("dbc-file")

	return cmd
}

func (s *protoGen) run(ctx context.Context, input cli.Input) error {
	text := defaultTemplate
	if s.templateFile != "" {
		raw, err := os.ReadFile(s.templateFile)
		if err != nil {
			return errors.Wrap(err, "read template")
		}
		text = string(raw)
	}

	tmpl, err := template.New("proto").Funcs(template.FuncMap{
		"ToProtoMessageName": dbc.ToProtoMessageName,
		"ToProtoFieldName":   dbc.ToProtoFieldName,
		"GetProtoType":       dbc.GetProtoType,
		"add":                func(a, b int) int { return a + b },
	}).Parse(text)
	if err != nil {
		return errors.Wrap(err, "parse template")
	}

	compiler, err := dbc.NewCompiler(s.dbcFile)
	if err != nil {
		return errors.Wrap(err, "compile DBC schema")
	}
	for _, warn := range compiler.Errs() {
		input.Logger.Warn("Schema metadata issue", "issue", warn.Error())
	}
	db := compiler.Database()

	data := struct {
		PackageName string
		Messages    []*descriptor.Message
	}{
		PackageName: dbc.ProtoPackageName(db.SourceFile),
		Messages:    db.Messages,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "execute template")
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	outPath := filepath.Join(s.outputDir, dbc.ProtoFileName(db.SourceFile))
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write proto file")
	}
	input.Logger.Info("Proto file written", "path", outPath, "messages", len(db.Messages))

	if !s.format && !s.lint {
		return nil
	}
	linter := protolint.NewLinter(input.Logger)
	if s.format {
		if err := linter.Format(ctx, outPath); err != nil {
			return err
		}
	}
	if s.lint {
		bufRes, err := linter.LintWithBuf(ctx, outPath)
		if err != nil {
			return err
		}
		fmt.Print(bufRes.Report())
		plRes, err := linter.LintWithProtolint(ctx, outPath)
		if err != nil {
			return err
		}
		fmt.Print(plRes.Report())
	}
	return nil
}
