// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are loaded into the process environment first (the default .env
// is optional), then env.Parse fills the struct from its `env` tags.
//
//	var cfg struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//	if err := config.Load(&cfg, config.WithPrefix("RULEKIT_")); err != nil {
//		return err
//	}
//
// Parse failures wrap ErrParsingConfig; unreadable .env files wrap
// ErrLoadingEnvFile. WithEnvironment bypasses the process environment, which
// keeps tests independent from each other.
package config
