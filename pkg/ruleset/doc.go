// Package ruleset compiles YAML rule set documents, mapping field names to
// ordered builder calls, into rule strings.
//
//	results, err := ruleset.NewCompiler(ruleset.WithRegistry(reg)).CompileBytes(ctx, content)
//	for _, r := range results {
//	    fmt.Printf("%s: %s\n", r.Field, r.Rules)
//	}
//
// Field and call names are NFC-normalized before use.
package ruleset
