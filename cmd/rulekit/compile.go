package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/ruleset"
)

func newCompileCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a YAML rule set to rule strings",
		Long: `Compile a YAML rule set to rule strings, one per field.

Use "-" to read the rule set from stdin.

Example:
  rulekit compile rules.yaml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts, args[0])
		},
	}
}

func runCompile(cmd *cobra.Command, opts *RootOptions, path string) error {
	content, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	ctx := context.WithValue(cmd.Context(), rulesetKey{}, path)
	results, err := ruleset.NewCompiler(
		ruleset.WithRegistry(opts.Registry),
		ruleset.WithLogger(opts.Log),
	).CompileBytes(ctx, content)
	if err != nil {
		return err
	}
	opts.Log.InfoContext(ctx, "rule set compiled", logger.Count(len(results)))

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, results)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s: %s\n", r.Field, r.Rules)
	}
	return nil
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	return content, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
