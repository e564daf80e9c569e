package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/urdujs/urdujs/cmd/urdujs/opts"
	"github.com/urdujs/urdujs/pkg/engine"
	"github.com/urdujs/urdujs/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Transpile and execute a Roman-Urdu script",
		Long: `Run transpiles the script, scans the generated JavaScript against the
denylist of dangerous identifiers, and executes it on the embedded
engine. Values given with --set are injected as local bindings.

The denylist scan is advisory only: it is not a sandbox, and executed
code can perform any I/O the embedded engine allows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			source, path, err := readScript(cmd, args[0])
			if err != nil {
				return err
			}

			bindings, err := parseBindings(sets)
			if err != nil {
				return err
			}

			result, err := o.Executor.Execute(ctx, source, bindings)
			if err != nil {
				var unsafe *engine.UnsafeTokenError
				if errors.As(err, &unsafe) {
					o.Logger.LogScript(log.ScriptOperation{Path: path, Status: log.ScriptRefused, Err: err})
					return err
				}
				o.Logger.LogScript(log.ScriptOperation{Path: path, Status: log.ScriptError, Err: err})
				return err
			}

			o.Logger.LogScript(log.ScriptOperation{Path: path, Status: log.ScriptExecuted})
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "binding injected into the script, as name=value (repeatable)")
	return cmd
}

// readScript loads the script source from a file, or stdin for "-".
func readScript(cmd *cobra.Command, arg string) (source, path string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", errors.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", errors.Errorf("reading script: %w", err)
	}
	return string(data), arg, nil
}

// parseBindings converts --set name=value flags into ordered bindings,
// preserving flag order. Values parse as bool or number when they look
// like one, otherwise they stay strings.
func parseBindings(sets []string) ([]engine.Binding, error) {
	bindings := make([]engine.Binding, 0, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("invalid --set %q: expected name=value", s)
		}
		bindings = append(bindings, engine.Binding{Name: name, Value: parseValue(raw)})
	}
	return bindings, nil
}

func parseValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
