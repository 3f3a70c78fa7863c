package cli

// KeyReader blocks until the user presses a key.
type KeyReader interface {
	ReadKey() error
}
