package generate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dbckit/dbcdata/pkg/cli"
	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/gen"
)

type generator struct {
	dbcFile   string
	selection string
	outputDir string
}

func NewCommand() *cobra.Command {
	s := &generator{
		outputDir: "pkg/dbc/generated",
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go message types and codecs from a DBC schema.",
		Long: `Generate a Go package with one struct per CAN message and
allocation-free Decode/Encode methods over classic CAN payloads.

A YAML selection narrows generation to named messages and signals;
without one, every non-multiplexed message in the schema is generated.`,
		Example: `  # Generate codecs for every message
  dbcdata generate --dbc-file vehicle.dbc --output-dir pkg/dbc/generated

  # Generate only the selected messages and signals
  dbcdata generate --dbc-file vehicle.dbc --selection signals.yaml`,
		RunE: cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.dbcFile, "dbc-file", s.dbcFile, "DBC schema file")
	cmd.Flags().StringVar(&s.selection, "selection", s.selection, "YAML message/signal selection")
	cmd.Flags().StringVar(&s.outputDir, "output-dir", s.outputDir, "directory generated packages are written under")

	cmd.MarkFlagRequired("dbc-file")

	return cmd
}

func (s *generator) run(ctx context.Context, input cli.Input) error {
	input.Logger.Info("Generating codecs",
		"dbc_file", s.dbcFile,
		"output_dir", s.outputDir,
	)

	compiler, err := dbc.NewCompiler(s.dbcFile)
	if err != nil {
		return errors.Wrap(err, "compile DBC schema")
	}
	if errs := compiler.Errs(); len(errs) > 0 {
		for _, e := range errs {
			input.Logger.Error("Schema metadata error", "error", e.Error())
		}
		return errors.Newf("schema carries %d metadata errors", len(errs))
	}

	var sel *dbc.Selection
	if s.selection != "" {
		sel, err = dbc.LoadSelection(s.selection)
		if err != nil {
			return errors.Wrap(err, "load selection")
		}
	}

	f, err := gen.Build(compiler.Database(), sel)
	if err != nil {
		return errors.Wrap(err, "build generation model")
	}
	src := gen.Generate(f)

	outPath := gen.OutputPath(s.outputDir, f)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return errors.Wrap(err, "write generated package")
	}

	input.Logger.Info("Generated package written",
		"package", f.Package,
		"messages", len(f.Messages),
		"path", outPath,
	)
	return nil
}
