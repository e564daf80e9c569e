package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/urdujs/urdujs/cmd/urdujs/opts"
	"gitlab.com/tozd/go/errors"
)

// NewVocabCmd creates a new vocab command
func NewVocabCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the current token vocabulary",
		Long: `Vocab prints the mapping table in rule application order: the built-in
vocabulary plus any extensions from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Token", "Replacement"}}
			for _, e := range o.Table.Entries() {
				data = append(data, []string{e.Token, e.Replacement})
			}

			if err := pterm.DefaultTable.
				WithHasHeader().
				WithWriter(cmd.OutOrStdout()).
				WithData(data).
				Render(); err != nil {
				return errors.Errorf("rendering vocabulary table: %w", err)
			}
			return nil
		},
	}
	return cmd
}
