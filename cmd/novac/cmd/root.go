package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/config"
	"github.com/you-not-fish/nova/internal/diag"
	"github.com/you-not-fish/nova/internal/logger"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("reported")

// rootOptions holds the persistent flags and the state derived from them.
type rootOptions struct {
	cfgFile string
	verbose bool
	noColor bool
	trace   bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the novac command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "novac",
		Short: "nova front-end compiler",
		Long: `novac tokenizes, parses and checks programs written in nova.

Commands:
  tokens   - dump the token stream
  ast      - print the syntax tree
  check    - run the full pipeline and report the first error
  serve    - run the websocket bridge for editors
  watch    - re-check a file on every save`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $NOVA_CONFIG, ./nova.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "print stage timings")

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newASTCmd(opts),
		newCheckCmd(opts),
		newServeCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree on os.Args.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "novac: %v\n", err)
}

// setup loads the configuration and installs the logger.
func (o *rootOptions) setup() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(o.cfg.Log.Level)
	if err != nil {
		return err
	}
	if o.verbose {
		level = logger.LevelDebug
	}
	if err := logger.Init(logger.Config{
		Level:   level,
		Format:  o.cfg.Log.Format,
		Output:  os.Stderr,
		LogFile: o.cfg.Log.File,
	}); err != nil {
		return err
	}
	o.logger = logger.New("novac")

	if o.cfg.Output.Trace {
		o.trace = true
	}
	return nil
}

func (o *rootOptions) color() bool {
	return !o.noColor && o.cfg.ColorEnabled()
}

// printer writes diagnostics to stderr.
func (o *rootOptions) printer(cmd *cobra.Command) *diag.Printer {
	return diag.NewPrinter(cmd.ErrOrStderr(), o.color())
}

// outPrinter writes results to stdout.
func (o *rootOptions) outPrinter(cmd *cobra.Command) *diag.Printer {
	return diag.NewPrinter(cmd.OutOrStdout(), o.color())
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
