package mocks

import (
	"maps"

	"github.com/dostoys/seth/internal/errors"
)

// Env is an environment backend whose behaviour can be overridden per method.
type Env struct {
	Vars map[string]string

	MockSet func(key, value string) error
}

func (e *Env) Lookup(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

func (e *Env) Set(key, value string) error {
	if e.MockSet != nil {
		return e.MockSet(key, value)
	}

	return errors.New("MockSet was not configured")
}

func (e *Env) Environ() map[string]string {
	return maps.Clone(e.Vars)
}
