package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/urdujs/urdujs/cmd/urdujs/commands"
	"github.com/urdujs/urdujs/cmd/urdujs/opts"
	"github.com/urdujs/urdujs/pkg/config"
	"github.com/urdujs/urdujs/pkg/engine"
	"github.com/urdujs/urdujs/pkg/log"
	"github.com/urdujs/urdujs/pkg/transpile"
	"github.com/urdujs/urdujs/pkg/vocab"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(os.Stdout, level)

	table := vocab.Default()

	// The config file is optional: a missing default file just means the
	// built-in vocabulary. An explicitly named file must exist.
	var cfg *config.Config
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
		if err := table.ExtendMap(cfg.Mappings); err != nil {
			return nil, errors.Errorf("extending vocabulary: %w", err)
		}
	} else if configFile != config.DefaultFile {
		return nil, errors.Errorf("config file %q: %w", configFile, err)
	}

	transpiler := transpile.New(table)
	return &opts.RootOpts{
		Config:     cfg,
		Table:      table,
		Transpiler: transpiler,
		Executor:   engine.New(transpiler),
		Logger:     logger,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &zlog
}

// newRootCmd builds the root command with all subcommands attached
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "urdujs",
		Short: "Transpile and run Roman-Urdu scripts as JavaScript",
		Long: `urdujs rewrites Roman-Urdu keywords in source text to their JavaScript
equivalents and can run the result on an embedded engine, after a
denylist scan of the generated code.`,
		SilenceUsage: true,
	}
	addRootFlags(root)

	// Shared opts are filled in once flags are parsed.
	o := &opts.RootOpts{}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()
		built, err := newRootOpts(cmd.Context())
		if err != nil {
			return err
		}
		*o = *built
		return nil
	}

	root.AddCommand(
		commands.NewTranspileCmd(o),
		commands.NewRunCmd(o),
		commands.NewVocabCmd(o),
	)
	return root
}
