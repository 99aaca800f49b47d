package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration copies keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads one or more .env files into the process environment.
// Variables already present in the environment are not overridden.
// With no arguments it loads ".env" from the working directory.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once; later calls are served from cache.
//
// Example:
//
//	type ValidatorConfig struct {
//		Precision    int  `env:"NUMBER_PRECISION" envDefault:"17"`
//		Scale        int  `env:"NUMBER_SCALE" envDefault:"2"`
//		OnlyPositive bool `env:"NUMBER_ONLY_POSITIVE"`
//	}
//
//	var cfg ValidatorConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if loadCached(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		err = parseAndStore(typeName, v)
	})
	if err != nil {
		// Allow a later attempt once the environment is fixed.
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return err
	}

	if loadCached(typeName, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload re-parses the environment into v, replacing any cached copy.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parseAndStore(getTypeName[T](), v)
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func parseAndStore[T any](typeName string, v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	globalCache.values[typeName] = *v
	globalCache.mu.Unlock()
	return nil
}

func loadCached[T any](typeName string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	cached, ok := globalCache.values[typeName]
	if !ok {
		return false
	}
	*v = cached.(T)
	return true
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
