package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into the config struct. Each struct type
// is loaded once per process and cached; later calls for the same type return
// the cached value. A .env file, if present, is loaded before the first parse.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env is the normal production case.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	mu.RLock()
	cached, ok := cache[typ]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to load config %s: %w", typ, err)
	}

	mu.Lock()
	// First writer wins so concurrent loaders observe one value.
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
	} else {
		cache[typ] = *cfg
	}
	mu.Unlock()

	return nil
}

// MustLoad is Load that panics on failure, for application startup paths.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
