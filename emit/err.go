package emit

import (
	"errors"

	"github.com/ezrec/apbrom/translate"
)

var f = translate.From

var (
	ErrRadixUnknown  = errors.New(f("radix unknown"))
	ErrFormatUnknown = errors.New(f("format unknown"))
	ErrDepthTooSmall = errors.New(f("depth smaller than image"))
	ErrDepthTooLarge = errors.New(f("depth exceeds address space"))
	ErrFillInvalid   = errors.New(f("fill word exceeds word width"))
)

// ErrName reports a name that matched no (or more than one) choice.
type ErrName struct {
	Name string
	Err  error // ErrRadixUnknown or ErrFormatUnknown.
	Why  error // Lookup failure.
}

func (err ErrName) Error() string {
	return f("%v '%v': %v", err.Err, err.Name, err.Why)
}

func (err ErrName) Unwrap() []error {
	return []error{err.Err, err.Why}
}
