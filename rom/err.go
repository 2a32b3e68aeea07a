package rom

import (
	"errors"

	"github.com/ezrec/apbrom/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrUnknownKind        = errors.New(f("unknown opcode kind"))
	ErrOperandOverflow    = errors.New(f("operand overflow"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Label errors
	ErrDuplicateLabel = errors.New(f("label duplicated"))
	ErrUndefinedLabel = errors.New(f("label undefined"))
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrTargetMissing  = errors.New(f("branch target missing"))
	ErrTargetInvalid  = errors.New(f("target on non-branch instruction"))

	// Image errors
	ErrDepthExceeded = errors.New(f("depth exceeded"))
	ErrDecode        = errors.New(f("decode"))

	// Warnings
	ErrMissingFinish = errors.New(f("program does not end with finish"))
)

// ErrKind reports a kind name (or value) outside the closed set of its class.
type ErrKind struct {
	Class Class
	Name  string
}

func (ek ErrKind) Error() string {
	return f("unknown %v kind '%v'", ek.Class.String(), ek.Name)
}

func (ek ErrKind) Is(err error) bool {
	return err == ErrUnknownKind
}

// ErrOverflow reports an operand that does not fit its field.
type ErrOverflow struct {
	Field Field
	Value uint64
	Width uint
}

func (eo ErrOverflow) Error() string {
	return f("%v %#x exceeds %v bits", eo.Field.String(), eo.Value, eo.Width)
}

func (eo ErrOverflow) Is(err error) bool {
	return err == ErrOperandOverflow
}

// ErrDepth reports a program longer than the addressable ROM.
type ErrDepth struct {
	Count int
	Max   int
}

func (ed ErrDepth) Error() string {
	return f("%v instructions exceed depth %v", ed.Count, ed.Max)
}

func (ed ErrDepth) Is(err error) bool {
	return err == ErrDepthExceeded
}

// ErrLabel attaches a label name to a label error.
type ErrLabel struct {
	Label string
	Err   error
}

func (err ErrLabel) Error() string {
	return f("label '%v' %v", err.Label, err.Err)
}

func (err ErrLabel) Unwrap() error {
	return err.Err
}

// ErrInstruction locates an error at a program index.
type ErrInstruction struct {
	Index int
	Err   error
}

func (err ErrInstruction) Error() string {
	return f("instruction %v %v", err.Index, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}
