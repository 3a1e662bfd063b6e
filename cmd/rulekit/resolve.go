package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Resolution describes how a call name is classified by a builder.
type Resolution struct {
	Call     string `json:"call"`
	Method   string `json:"method"`
	Rule     string `json:"rule"`
	Kind     string `json:"kind"`
	Override bool   `json:"override"`
}

func newResolveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <call>...",
		Short: "Show how call names resolve to rules",
		Long: `Show the rule identifier and classification of each call name.

Kinds: local, extension, proxy, or unresolved (only valid as a refinement of
the preceding proxy rule).

Example:
  rulekit resolve isString activeUrl notIn`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolutions := make([]Resolution, len(args))
			for i, call := range args {
				resolutions[i] = resolve(opts.Registry, call)
			}

			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(out, resolutions)
			}
			for _, r := range resolutions {
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.Call, r.Rule, r.Kind)
			}
			return nil
		},
	}
}

func resolve(reg *rule.Registry, call string) Resolution {
	method, identifier := rule.Resolve(call)
	r := Resolution{Call: call, Method: method, Rule: identifier, Override: rule.HasOverride(identifier)}
	switch {
	case rule.IsBuiltinLocal(identifier):
		r.Kind = "local"
	case reg.Has(identifier):
		r.Kind = "extension"
	case rule.IsProxy(identifier):
		r.Kind = "proxy"
	default:
		r.Kind = "unresolved"
	}
	return r
}
