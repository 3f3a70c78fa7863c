package mocks

import (
	"github.com/dostoys/seth/internal/errors"
)

type Keys struct {
	MockReadKey func() error
	Presses     int
}

func (k *Keys) ReadKey() error {
	k.Presses++

	if k.MockReadKey != nil {
		return k.MockReadKey()
	}

	return nil
}

// FailingKeys is a key reader whose input is gone.
type FailingKeys struct{}

func (FailingKeys) ReadKey() error {
	return errors.New("MockReadKey was not configured")
}
