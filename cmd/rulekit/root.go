package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Config is read from RULEKIT_* environment variables and an optional .env file.
type Config struct {
	LogLevel   string   `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string   `env:"LOG_FORMAT" envDefault:"text"`
	Extensions []string `env:"EXTENSIONS" envSeparator:","`
}

// RootOptions holds global flags and the state prepared for every command.
type RootOptions struct {
	Format   string
	LogLevel string

	// environment replaces the process environment when non-nil.
	environment map[string]string

	Config   Config
	Registry *rule.Registry
	Log      *slog.Logger
}

// validFormats are the allowed --format values.
var validFormats = []string{"text", "json"}

type rulesetKey struct{}

func newRootCommand(environment map[string]string) *cobra.Command {
	opts := &RootOptions{environment: environment}

	cmd := &cobra.Command{
		Use:           "rulekit",
		Short:         "Build validation rule strings",
		Long:          "rulekit compiles YAML rule sets into pipe-delimited validation rule strings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides RULEKIT_LOG_LEVEL")

	cmd.AddCommand(newCompileCommand(opts))
	cmd.AddCommand(newResolveCommand(opts))

	return cmd
}

func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !slices.Contains(validFormats, o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, validFormats)
	}

	loadOpts := []config.Option{config.WithPrefix("RULEKIT_")}
	if o.environment != nil {
		loadOpts = append(loadOpts, config.WithEnvironment(o.environment))
	}
	if err := config.Load(&o.Config, loadOpts...); err != nil {
		return err
	}

	level := o.Config.LogLevel
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	logFormat := logger.Format(o.Config.LogFormat)
	if logFormat != logger.FormatJSON && logFormat != logger.FormatText {
		return fmt.Errorf("invalid RULEKIT_LOG_FORMAT %q", o.Config.LogFormat)
	}

	o.Log = logger.New(
		logger.WithLevelName(level),
		logger.WithFormat(logFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("ruleset", rulesetKey{}),
	)
	o.Registry = rule.NewRegistry(o.Config.Extensions)
	return nil
}
