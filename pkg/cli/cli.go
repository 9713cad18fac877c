package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Input carries per-invocation dependencies into command run funcs.
type Input struct {
	Logger slog.Logger
}

// CLI is the root command of the tool.
type CLI struct {
	root *cobra.Command
}

// NewCLI builds the root command with the shared --debug flag.
func NewCLI(name, short string) *CLI {
	root := &cobra.Command{
		Use:           name,
		Short:         short,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	return &CLI{root: root}
}

// AddCommands registers subcommands on the root.
func (c *CLI) AddCommands(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		c.root.AddCommand(cmd)
	}
}

// Run executes the CLI with a context that is cancelled on SIGINT or
// SIGTERM.
func (c *CLI) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.root.ExecuteContext(ctx)
}

// WithContext adapts a run function to cobra, passing the command
// context and an Input whose logger level follows the --debug flag.
func WithContext(run func(ctx context.Context, input Input) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		level := slog.LevelInfo
		if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return run(cmd.Context(), Input{Logger: *logger})
	}
}
