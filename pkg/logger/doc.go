// Package logger builds the *slog.Logger instances used across rulekit and
// provides attribute helpers that keep key names consistent.
//
// New applies functional options and returns a logger whose handler is
// wrapped by LogHandlerDecorator, which injects attributes pulled from the
// context (for example the rule set file being compiled) on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithJSONFormatter(),
//	    logger.WithContextValue("ruleset", rulesetKey{}),
//	)
//	log.DebugContext(ctx, "rule applied", logger.Call("isString"), logger.Rule("string"))
//
// Builders that are not given a logger use Discard.
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("compiled", logger.Error(err))
//
// needs no nil check.
package logger
