package factory

import (
	"fmt"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// Factory builds a T from raw settings.
type Factory[T any] func(conf map[string]any) (T, error)

// ModuleConfig names a module type and carries its raw settings.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Registry maps type names to factories. Safe for concurrent use.
type Registry[T any] struct {
	mu     sync.RWMutex
	byName map[string]Factory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{byName: make(map[string]Factory[T])}
}

// Register binds name to f. A nil factory or a name registered twice
// is an error.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	if f == nil {
		return fmt.Errorf("nil factory for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("factory %q registered twice", name)
	}
	r.byName[name] = f
	return nil
}

func (r *Registry[T]) lookup(name string) (Factory[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	return f, ok
}

// Create instantiates the module named by cfg.Type from cfg.Conf.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	f, ok := r.lookup(cfg.Type)
	if !ok {
		var zero T
		return zero, fmt.Errorf("no factory for module type %q", cfg.Type)
	}
	return f(cfg.Conf)
}

// Decode fills out from raw settings, matching fields by json tag.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
