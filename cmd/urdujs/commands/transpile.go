package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/urdujs/urdujs/cmd/urdujs/opts"
	"github.com/urdujs/urdujs/pkg/script"
	"gitlab.com/tozd/go/errors"
)

// NewTranspileCmd creates a new transpile command
func NewTranspileCmd(o *opts.RootOpts) *cobra.Command {
	var suffix string

	cmd := &cobra.Command{
		Use:   "transpile [glob...]",
		Short: "Rewrite Roman-Urdu scripts to JavaScript",
		Long: `Transpile rewrites every whole-word vocabulary token to its JavaScript
equivalent. With glob arguments it processes the matched files and
writes a sibling output next to each; without arguments it reads from
stdin and writes to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), o.Transpiler.Transpile(ctx, string(src)))
				return nil
			}

			if suffix == "" && o.Config != nil && o.Config.Scripts != nil {
				suffix = o.Config.Scripts.OutputSuffix
			}

			runner := script.NewRunner(script.Options{
				Transpiler:   o.Transpiler,
				Logger:       o.Logger,
				OutputSuffix: suffix,
			})

			summary, err := runner.Run(ctx, args)
			if err != nil {
				return errors.Errorf("transpiling scripts: %w", err)
			}

			o.Logger.Infof("%d files, %d modified, %d replacements",
				summary.Files, summary.Modified, summary.Replacements)
			return nil
		},
	}

	cmd.Flags().StringVar(&suffix, "output-suffix", "", "extension for transpiled files (default .js)")
	return cmd
}
