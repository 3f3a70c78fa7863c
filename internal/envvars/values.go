package envvars

import (
	"strconv"
	"strings"
	"time"

	"github.com/dostoys/seth/internal/errors"
)

// DefaultSeparator splits list values, e.g. "a||b||c".
const DefaultSeparator = "||"

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func attr[T any](v *Vars, key string, def T, parse func(string) (T, error)) T {
	raw, ok := v.Lookup(key)
	if !ok {
		return def
	}

	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return value
}

func (v *Vars) String(key, def string) string {
	if value, ok := v.Lookup(key); ok {
		return value
	}
	return def
}

// RequireString returns the value of key, failing when key is empty or unset.
func (v *Vars) RequireString(key string) (string, error) {
	if key == "" {
		return "", errors.Wrap(errors.ErrInvalidArgument, "key is required")
	}

	value, ok := v.Lookup(key)
	if !ok {
		return "", errors.Errorf("%s is not set", v.name(key))
	}
	return value, nil
}

// Bool treats any value starting with "t", plus "1", "y" and "yes", as true.
// Every other value is false.
func (v *Vars) Bool(key string, def bool) bool {
	return attr(v, key, def, func(s string) (bool, error) {
		s = strings.ToLower(s)
		return strings.HasPrefix(s, "t") || s == "1" || s == "y" || s == "yes", nil
	})
}

func (v *Vars) Int(key string, def int) int {
	return attr(v, key, def, strconv.Atoi)
}

func (v *Vars) Int64(key string, def int64) int64 {
	return attr(v, key, def, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func (v *Vars) Uint64(key string, def uint64) uint64 {
	return attr(v, key, def, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func (v *Vars) Duration(key string, def time.Duration) time.Duration {
	return attr(v, key, def, time.ParseDuration)
}

func (v *Vars) Time(key string, def time.Time) time.Time {
	return attr(v, key, def, func(s string) (time.Time, error) {
		var err error
		for _, layout := range timeLayouts {
			var t time.Time
			if t, err = time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, err
	})
}

// Strings splits the value of key on sep, or DefaultSeparator when sep is
// empty.
func (v *Vars) Strings(key, sep string, def []string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}

	value, ok := v.Lookup(key)
	if !ok {
		return def
	}
	return strings.Split(value, sep)
}
