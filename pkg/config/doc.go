// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing. Each configuration type is
// parsed once and cached by value for the rest of the process.
//
// # Usage
//
//	type ValidatorConfig struct {
//	    Precision    int  `env:"NUMBER_PRECISION" envDefault:"17"`
//	    Scale        int  `env:"NUMBER_SCALE" envDefault:"2"`
//	    OnlyPositive bool `env:"NUMBER_ONLY_POSITIVE"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg ValidatorConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors for errors.Is: ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer. A failed parse is not cached, so a
// corrected environment can be loaded on the next call.
//
// # Testing Helpers
//
// ResetCache clears every cached type; ForceReload re-parses a single one
// after the environment changed.
package config
