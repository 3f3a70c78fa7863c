package envvars

import (
	"maps"
	"os"
	"strings"

	"github.com/dostoys/seth/internal/errors"
)

// Backend is a source of environment variables.
type Backend interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Environ() map[string]string
}

// OSBackend reads and writes the environment of the current process.
type OSBackend struct{}

func (OSBackend) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSBackend) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return errors.Wrapf(err, "unable to set %q", key)
	}
	return nil
}

func (OSBackend) Environ() map[string]string {
	env := os.Environ()
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		// Windows keeps per-drive working directories in variables such as
		// "=C:", which have an empty name.
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

type MemoryBackend struct {
	data map[string]string
}

func NewMemoryBackend(vars map[string]string) *MemoryBackend {
	data := make(map[string]string, len(vars))
	maps.Copy(data, vars)
	return &MemoryBackend{data: data}
}

func (m *MemoryBackend) Lookup(key string) (string, bool) {
	value, ok := m.data[key]
	return value, ok
}

func (m *MemoryBackend) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Environ() map[string]string {
	return maps.Clone(m.data)
}
