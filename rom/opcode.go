package rom

import (
	"slices"
)

// Class is the opcode class held in the top bits of every word.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_FINISH  = Class(0) // finish
	CLASS_SET     = Class(1) // set
	CLASS_REQUEST = Class(2) // request
	CLASS_ALU     = Class(3) // alu
	CLASS_WAIT    = Class(4) // wait
	CLASS_BRANCH  = Class(5) // branch
)

// Register is a sequencer register loadable by a set instruction.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_INCREMENT   = Register(0) // increment
	REG_ADDRESS     = Register(1) // address
	REG_ACCUMULATOR = Register(2) // accumulator
	REG_REPEAT      = Register(3) // repeat
)

// RequestKind is the type of bus request.
type RequestKind int

//go:generate go tool stringer -linecomment -type=RequestKind
const (
	REQ_READ          = RequestKind(0) // read
	REQ_WRITE_ARG     = RequestKind(1) // write_arg
	REQ_WRITE_ACC     = RequestKind(2) // write_acc
	REQ_READ_INC      = RequestKind(3) // read_inc
	REQ_WRITE_ARG_INC = RequestKind(4) // write_arg_inc
	REQ_WRITE_ACC_INC = RequestKind(5) // write_acc_inc
)

// AluOp is an accumulator operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_AND = AluOp(2) // and
	ALU_OP_OR  = AluOp(3) // or
	ALU_OP_XOR = AluOp(4) // xor
	ALU_OP_BIC = AluOp(5) // bic
)

// BranchKind is the branch condition.
type BranchKind int

//go:generate go tool stringer -linecomment -type=BranchKind
const (
	BRANCH_ALWAYS = BranchKind(0) // branch
	BRANCH_EQ     = BranchKind(1) // beq
	BRANCH_NE     = BranchKind(2) // bne
	BRANCH_LOOP   = BranchKind(3) // loop
)

// Field names an operand position within a word.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_CLASS     = Field(0) // class
	FIELD_KIND      = Field(1) // kind
	FIELD_IMMEDIATE = Field(2) // immediate
	FIELD_CYCLES    = Field(3) // cycles
	FIELD_OPERAND   = Field(4) // operand
	FIELD_TARGET    = Field(5) // target
)

const (
	WORD_WIDTH    = 40                 // Bits per ROM word.
	ADDRESS_WIDTH = 16                 // Bits per ROM address.
	MAX_DEPTH     = 1 << ADDRESS_WIDTH // Words addressable by a branch.

	WORD_MASK = Word(1)<<WORD_WIDTH - 1
)

// Word is a single encoded ROM word. Only the low WORD_WIDTH bits are used.
type Word uint64

// Slot is the position of one field within a word.
type Slot struct {
	Field Field
	Shift uint
	Width uint
}

// Max returns the largest value the slot holds.
func (s Slot) Max() uint64 {
	return (uint64(1) << s.Width) - 1
}

// Fits returns true if value is representable in the slot.
func (s Slot) Fits(value uint64) bool {
	return value <= s.Max()
}

var (
	slotClass     = Slot{Field: FIELD_CLASS, Shift: 36, Width: 4}
	slotKind      = Slot{Field: FIELD_KIND, Shift: 32, Width: 4}
	slotImmediate = Slot{Field: FIELD_IMMEDIATE, Shift: 0, Width: 32}
	slotCycles    = Slot{Field: FIELD_CYCLES, Shift: 0, Width: 32}
	slotOperand   = Slot{Field: FIELD_OPERAND, Shift: 16, Width: 16}
	slotTarget    = Slot{Field: FIELD_TARGET, Shift: 0, Width: 16}
)

// layoutTable lists the operand slots of each class, in operand order.
// Changing it changes every emitted image.
var layoutTable = map[Class][]Slot{
	CLASS_FINISH:  nil,
	CLASS_SET:     {slotKind, slotImmediate},
	CLASS_REQUEST: {slotKind, slotImmediate},
	CLASS_ALU:     {slotKind, slotImmediate},
	CLASS_WAIT:    {slotCycles},
	CLASS_BRANCH:  {slotKind, slotOperand, slotTarget},
}

// Layout returns the operand slots of a class. The class slot itself is
// common to all classes and is not included.
func Layout(class Class) []Slot {
	return slices.Clone(layoutTable[class])
}

// ClassSlot returns the slot holding the opcode class.
func ClassSlot() Slot {
	return slotClass
}

// makeWord packs already validated operands for class.
func makeWord(class Class, operands ...uint64) (word Word) {
	word = Word(uint64(class)&slotClass.Max()) << slotClass.Shift
	for n, slot := range layoutTable[class] {
		word |= Word(operands[n]&slot.Max()) << slot.Shift
	}

	return
}

// Get returns the value of slot in the word.
func (word Word) Get(slot Slot) uint64 {
	return (uint64(word) >> slot.Shift) & slot.Max()
}

// Class returns the opcode class of the word.
func (word Word) Class() Class {
	return Class(word.Get(slotClass))
}

// Field returns the value of a field, if the word's class has that field.
func (word Word) Field(field Field) (value uint64, ok bool) {
	if field == FIELD_CLASS {
		return word.Get(slotClass), true
	}

	for _, slot := range layoutTable[word.Class()] {
		if slot.Field == field {
			return word.Get(slot), true
		}
	}

	return
}

// registerMap maps register names.
var registerMap = map[string]Register{
	"increment":   REG_INCREMENT,
	"address":     REG_ADDRESS,
	"accumulator": REG_ACCUMULATOR,
	"repeat":      REG_REPEAT,
}

// requestMap maps bus request names.
var requestMap = map[string]RequestKind{
	"read":          REQ_READ,
	"write_arg":     REQ_WRITE_ARG,
	"write_acc":     REQ_WRITE_ACC,
	"read_inc":      REQ_READ_INC,
	"write_arg_inc": REQ_WRITE_ARG_INC,
	"write_acc_inc": REQ_WRITE_ACC_INC,
}

// aluMap maps ALU operation names.
var aluMap = map[string]AluOp{
	"add": ALU_OP_ADD,
	"sub": ALU_OP_SUB,
	"and": ALU_OP_AND,
	"or":  ALU_OP_OR,
	"xor": ALU_OP_XOR,
	"bic": ALU_OP_BIC,
}

// branchMap maps branch condition names.
var branchMap = map[string]BranchKind{
	"branch": BRANCH_ALWAYS,
	"beq":    BRANCH_EQ,
	"bne":    BRANCH_NE,
	"loop":   BRANCH_LOOP,
}

// ParseRegister returns the register called name.
func ParseRegister(name string) (reg Register, err error) {
	reg, ok := registerMap[name]
	if !ok {
		err = ErrKind{Class: CLASS_SET, Name: name}
	}
	return
}

// ParseRequestKind returns the bus request called name.
func ParseRequestKind(name string) (kind RequestKind, err error) {
	kind, ok := requestMap[name]
	if !ok {
		err = ErrKind{Class: CLASS_REQUEST, Name: name}
	}
	return
}

// ParseAluOp returns the ALU operation called name.
func ParseAluOp(name string) (op AluOp, err error) {
	op, ok := aluMap[name]
	if !ok {
		err = ErrKind{Class: CLASS_ALU, Name: name}
	}
	return
}

// ParseBranchKind returns the branch condition called name.
func ParseBranchKind(name string) (kind BranchKind, err error) {
	kind, ok := branchMap[name]
	if !ok {
		err = ErrKind{Class: CLASS_BRANCH, Name: name}
	}
	return
}

// Valid returns true for a declared register.
func (reg Register) Valid() bool {
	return reg >= REG_INCREMENT && reg <= REG_REPEAT
}

// Valid returns true for a declared request kind.
func (kind RequestKind) Valid() bool {
	return kind >= REQ_READ && kind <= REQ_WRITE_ACC_INC
}

// Valid returns true for a declared ALU operation.
func (op AluOp) Valid() bool {
	return op >= ALU_OP_ADD && op <= ALU_OP_BIC
}

// Valid returns true for a declared branch condition.
func (kind BranchKind) Valid() bool {
	return kind >= BRANCH_ALWAYS && kind <= BRANCH_LOOP
}
