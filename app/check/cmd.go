package check

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dbckit/dbcdata/pkg/cli"
	"github.com/dbckit/dbcdata/pkg/dbc"
	"github.com/dbckit/dbcdata/pkg/gen"
	"github.com/dbckit/dbcdata/pkg/signal"
)

type checker struct {
	dbcFile   string
	selection string
}

func NewCommand() *cobra.Command {
	s := &checker{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a DBC schema against the code generation rules.",
		Long: `Sweep a DBC schema and report everything that would stop code
generation: metadata the compiler could not digest, bit placements the
codec cannot compile, name collisions and out-of-range value tables.

Findings are printed one per line. Notes point at messages the generated
package will not cover; errors make the command exit non-zero.`,
		Example: `  # Check the whole schema
  dbcdata check --dbc-file vehicle.dbc

  # Check only the messages a selection keeps
  dbcdata check --dbc-file vehicle.dbc --selection signals.yaml`,
		RunE: cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.dbcFile, "dbc-file", s.dbcFile, "DBC schema file")
	cmd.Flags().StringVar(&s.selection, "selection", s.selection, "YAML message/signal selection")

	cmd.MarkFlagRequired("dbc-file")

	return cmd
}

func (s *checker) run(ctx context.Context, input cli.Input) error {
	input.Logger.Info("Checking schema", "dbc_file", s.dbcFile)

	compiler, err := dbc.NewCompiler(s.dbcFile)
	if err != nil {
		return errors.Wrap(err, "compile DBC schema")
	}

	var errorCount, noteCount int
	for _, e := range compiler.Errs() {
		fmt.Printf("error: %s\n", e)
		errorCount++
	}

	db := compiler.Database()
	signalCount := 0
	for _, m := range db.Messages {
		for _, sig := range m.Signals {
			signalCount++
			if signal.Validate(sig.Start, sig.Length, m.Length, sig.IsBigEndian) != nil {
				continue
			}
			input.Logger.Debug("Signal analysis",
				"message", m.Name,
				"signal", sig.Name,
				"layout", signal.Classify(sig.Start, sig.Length, sig.IsBigEndian),
				"go_type", signal.GoNativeType(sig.Length, sig.IsSigned, sig.Scale),
			)
		}
	}

	var sel *dbc.Selection
	if s.selection != "" {
		sel, err = dbc.LoadSelection(s.selection)
		if err != nil {
			return errors.Wrap(err, "load selection")
		}
	}

	findings, err := gen.Check(db, sel)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		errorCount++
	}
	for _, f := range findings {
		if f.Fatal {
			fmt.Printf("error: %s\n", f.Message)
			errorCount++
		} else {
			fmt.Printf("note: %s\n", f.Message)
			noteCount++
		}
	}

	fmt.Printf("%d messages, %d signals checked: %d errors, %d notes\n",
		len(db.Messages), signalCount, errorCount, noteCount)
	if errorCount > 0 {
		return errors.Newf("schema check found %d errors", errorCount)
	}
	return nil
}
