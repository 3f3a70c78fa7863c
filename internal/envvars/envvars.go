// Package envvars reads environment variables scoped by an application
// prefix and/or postfix, e.g. SETH_WIDTH, and converts them to typed values.
package envvars

import (
	"slices"
	"strings"

	"github.com/dostoys/seth/internal/errors"
)

var ErrInvalidName = errors.New("only letters, digits and underscores are allowed in environment variable names")

// Vars is a view of a Backend restricted to names that start with Prefix and
// end with Postfix. Both comparisons ignore case.
type Vars struct {
	backend Backend
	prefix  string
	postfix string
}

// New returns a Vars scoped by prefix and postfix. A trailing underscore on
// prefix, or a leading one on postfix, is implied and may be omitted.
func New(backend Backend, prefix, postfix string) (*Vars, error) {
	if backend == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "missing environment backend")
	}

	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "_")
	if !validName(prefix) {
		return nil, errors.Wrapf(ErrInvalidName, "invalid prefix %q", prefix)
	}

	postfix = strings.TrimPrefix(strings.TrimSpace(postfix), "_")
	if !validName(postfix) {
		return nil, errors.Wrapf(ErrInvalidName, "invalid postfix %q", postfix)
	}

	return &Vars{backend: backend, prefix: prefix, postfix: postfix}, nil
}

func validName(s string) bool {
	for _, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Prefix returns the prefix including its separating underscore, or "".
func (v *Vars) Prefix() string {
	if v.prefix == "" {
		return ""
	}
	return v.prefix + "_"
}

// Postfix returns the postfix including its separating underscore, or "".
func (v *Vars) Postfix() string {
	if v.postfix == "" {
		return ""
	}
	return "_" + v.postfix
}

// Global returns an unscoped view of the same backend.
func (v *Vars) Global() *Vars {
	return &Vars{backend: v.backend}
}

func (v *Vars) name(key string) string {
	return v.Prefix() + key + v.Postfix()
}

func (v *Vars) inScope(name string) bool {
	prefix, postfix := v.Prefix(), v.Postfix()
	if prefix == "" && postfix == "" {
		return true
	}
	if len(name) < len(prefix)+len(postfix) {
		return false
	}
	return strings.EqualFold(name[:len(prefix)], prefix) &&
		strings.EqualFold(name[len(name)-len(postfix):], postfix)
}

// All returns every variable in scope, keyed by its full name.
func (v *Vars) All() map[string]string {
	all := make(map[string]string)
	for name, value := range v.backend.Environ() {
		if v.inScope(name) {
			all[name] = value
		}
	}
	return all
}

// Keys returns the sorted full names of every variable in scope.
func (v *Vars) Keys() []string {
	all := v.All()
	keys := make([]string, 0, len(all))
	for name := range all {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the value of the scoped variable key.
func (v *Vars) Lookup(key string) (string, bool) {
	return v.backend.Lookup(v.name(key))
}

func (v *Vars) Contains(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// IndexOfAny returns the index of the first key that is set, or -1.
func (v *Vars) IndexOfAny(keys ...string) int {
	for i, key := range keys {
		if v.Contains(key) {
			return i
		}
	}
	return -1
}

func (v *Vars) Set(key, value string) error {
	if key == "" {
		return errors.Wrap(errors.ErrInvalidArgument, "key is required")
	}
	name := v.name(key)
	return errors.Wrapf(v.backend.Set(name, value), "unable to set %s", name)
}
