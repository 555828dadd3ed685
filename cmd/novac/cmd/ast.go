package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/syntax"
)

func newASTCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <file.nova>",
		Short: "Print the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = opts.cfg.Output.ASTFormat
			}

			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			prog, err := syntax.Parse(args[0], src)
			if err != nil {
				opts.printer(cmd).Error(err, src)
				return errReported
			}

			switch format {
			case "json":
				return syntax.FprintJSON(cmd.OutOrStdout(), prog)
			case "text":
				syntax.Fprint(cmd.OutOrStdout(), prog)
				return nil
			}
			return fmt.Errorf("unknown AST format %q", format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format (text or json, default from config)")
	return cmd
}
