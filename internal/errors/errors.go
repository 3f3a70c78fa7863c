// Package errors wraps github.com/pkg/errors so that every package in the
// module annotates failures the same way and can still match on sentinels.
package errors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument marks a caller contract violation, such as an empty
	// key passed where one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// HandledError has already been reported to the user, but should still
	// produce a non-zero exit code.
	HandledError = errors.New("handled error")
)

func New(message string) error {
	return errors.New(message)
}

func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
