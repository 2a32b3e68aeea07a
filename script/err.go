package script

import (
	"errors"

	"github.com/ezrec/apbrom/translate"
)

var f = translate.From

var (
	ErrCodeMissing     = errors.New(f("program has no \"code\" list"))
	ErrEntryInvalid    = errors.New(f("code entry is not (instruction,) or (instruction, labels)"))
	ErrNotInstruction  = errors.New(f("not an instruction"))
	ErrNotCompilation  = errors.New(f("not a compilation"))
	ErrNotInteger      = errors.New(f("not an integer"))
	ErrNegative        = errors.New(f("negative value"))
	ErrLabelMultiple   = errors.New(f("more than one label of a kind on one entry"))
	ErrNoImage         = errors.New(f("script emitted no image"))
	ErrMultipleImages  = errors.New(f("script emitted more than one image"))
	ErrPredefineShadow = errors.New(f("predefine shadows a builtin"))
)

// ErrEntry locates an error at an index of the code list.
type ErrEntry struct {
	Index int
	Err   error
}

func (err ErrEntry) Error() string {
	return f("code[%v] %v", err.Index, err.Err)
}

func (err ErrEntry) Unwrap() error {
	return err.Err
}

// ErrScript locates an error in a script file.
type ErrScript struct {
	Filename string
	Err      error
}

func (err ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
