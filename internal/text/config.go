// Package text wraps and centers console text.
package text

// DefaultSuffix is the ASCII SUB control character, shown at the end of a
// broken line when suffixes are enabled.
const DefaultSuffix = "\x1a"

// Config controls where Wrap may break a line. A Config is treated as
// immutable once handed to New.
type Config struct {
	// BreakChars end a wrappable token; a line may end right after any of them.
	BreakChars []rune

	// Overrides are substrings that must never be split. A break that would
	// land inside (or right after) one of them is moved to before it.
	Overrides []string

	// Suffix is appended to a line that was broken while more text follows.
	Suffix string

	// ShowSuffix enables Suffix.
	ShowSuffix bool
}

func DefaultConfig() Config {
	return Config{
		BreakChars: []rune{' ', '.', ',', ':', ';', '>', '-', ']', '}', '!', '?', ')', '\\', '/'},
		Overrides:  []string{"--", " /", " `", "\""},
		Suffix:     DefaultSuffix,
		ShowSuffix: false,
	}
}
