package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/syntax"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens <file.nova>",
		Short: "Dump the token stream",
		Long: `Scans a file and prints one token per line.

Formats:
  dump   KIND('text') @line:col
  table  position, token and literal columns`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks, err := syntax.Tokenize(args[0], src)
			if err != nil {
				opts.printer(cmd).Error(err, src)
				return errReported
			}

			out := cmd.OutOrStdout()
			switch format {
			case "dump":
				for _, t := range toks {
					fmt.Fprintln(out, t)
				}
			case "table":
				fmt.Fprintf(out, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
				fmt.Fprintf(out, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
				for _, t := range toks {
					fmt.Fprintf(out, "%-20s %-12s %s\n", t.Pos, t.Tok.Kind(), formatLiteral(t))
				}
			default:
				return fmt.Errorf("unknown token format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "dump", "output format (dump or table)")
	return cmd
}

// formatLiteral quotes string literals so whitespace stays visible.
func formatLiteral(t syntax.Lexeme) string {
	if t.Tok.Kind() == "STRING" {
		return strconv.Quote(t.Text)
	}
	return t.Text
}
