package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/compiler"
	"github.com/you-not-fish/nova/internal/syntax"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var typed, scopes bool

	cmd := &cobra.Command{
		Use:   "check <file.nova>",
		Short: "Run the full pipeline and report the first error",
		Long: `Tokenizes, parses and checks a file. On success prints the program
outline, or with --typed the syntax tree annotated with expression types,
or with --scopes the tree of scope frames and their bindings.
On failure prints the first error with its source line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			res, err := compiler.Compile(args[0], src, compiler.Options{Logger: opts.logger})
			if err != nil {
				opts.printer(cmd).Error(err, src)
				return errReported
			}

			switch {
			case typed:
				syntax.FprintTyped(cmd.OutOrStdout(), res.Program, res.TypeOf)
			case scopes:
				fmt.Fprint(cmd.OutOrStdout(), res.Scope)
			default:
				p := opts.outPrinter(cmd)
				o := compiler.BuildOutline(res.Program)
				p.OK(args[0], o)
				p.Outline(o)
			}

			if opts.trace {
				printTrace(cmd, res.Timings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&typed, "typed", false, "print the typed syntax tree")
	cmd.Flags().BoolVar(&scopes, "scopes", false, "print the scope tree")
	cmd.MarkFlagsMutuallyExclusive("typed", "scopes")
	return cmd
}

func printTrace(cmd *cobra.Command, timings []compiler.Timing) {
	w := cmd.ErrOrStderr()
	for _, t := range timings {
		fmt.Fprintf(w, "trace: %-8s %s\n", t.Stage, t.Duration)
	}
}
