package rom

import (
	"fmt"
)

// Instruction is a single ROM instruction. The implementations are
// SetRegister, Request, Alu, Wait, Branch and Finish.
type Instruction interface {
	fmt.Stringer

	// Class returns the opcode class.
	Class() Class

	// operands returns the slot values in layoutTable order.
	operands() []uint64

	// kindValid is false when the kind is outside its enumeration.
	kindValid() bool
}

// SetRegister loads a register with a constant.
type SetRegister struct {
	Register  Register
	Immediate uint64
}

// Request issues a bus request carrying an immediate.
type Request struct {
	Kind      RequestKind
	Immediate uint64
}

// Alu applies an operation to the accumulator with an immediate operand.
type Alu struct {
	Op      AluOp
	Operand uint64
}

// Wait stalls the sequencer for a number of cycles.
type Wait struct {
	Cycles uint64
}

// Branch transfers control to an absolute ROM address. Target is filled
// in by the assembler from the entry's label reference.
type Branch struct {
	Kind    BranchKind
	Operand uint64
	Target  uint64
}

// Finish halts the sequencer.
type Finish struct{}

var (
	_ Instruction = SetRegister{}
	_ Instruction = Request{}
	_ Instruction = Alu{}
	_ Instruction = Wait{}
	_ Instruction = Branch{}
	_ Instruction = Finish{}
)

func (SetRegister) Class() Class { return CLASS_SET }
func (Request) Class() Class     { return CLASS_REQUEST }
func (Alu) Class() Class         { return CLASS_ALU }
func (Wait) Class() Class        { return CLASS_WAIT }
func (Branch) Class() Class      { return CLASS_BRANCH }
func (Finish) Class() Class      { return CLASS_FINISH }

func (insn SetRegister) operands() []uint64 {
	return []uint64{uint64(insn.Register), insn.Immediate}
}

func (insn Request) operands() []uint64 {
	return []uint64{uint64(insn.Kind), insn.Immediate}
}

func (insn Alu) operands() []uint64 {
	return []uint64{uint64(insn.Op), insn.Operand}
}

func (insn Wait) operands() []uint64 {
	return []uint64{insn.Cycles}
}

func (insn Branch) operands() []uint64 {
	return []uint64{uint64(insn.Kind), insn.Operand, insn.Target}
}

func (insn Finish) operands() []uint64 {
	return nil
}

func (insn SetRegister) kindValid() bool { return insn.Register.Valid() }
func (insn Request) kindValid() bool     { return insn.Kind.Valid() }
func (insn Alu) kindValid() bool         { return insn.Op.Valid() }
func (insn Wait) kindValid() bool        { return true }
func (insn Branch) kindValid() bool      { return insn.Kind.Valid() }
func (insn Finish) kindValid() bool      { return true }

func (insn SetRegister) String() string {
	return fmt.Sprintf("set.%v %#x", insn.Register, insn.Immediate)
}

func (insn Request) String() string {
	return fmt.Sprintf("request.%v %#x", insn.Kind, insn.Immediate)
}

func (insn Alu) String() string {
	return fmt.Sprintf("alu.%v %#x", insn.Op, insn.Operand)
}

func (insn Wait) String() string {
	return fmt.Sprintf("wait %v", insn.Cycles)
}

func (insn Branch) String() string {
	return fmt.Sprintf("branch.%v %#x %04x", insn.Kind, insn.Operand, insn.Target)
}

func (insn Finish) String() string {
	return "finish"
}

// kindName is the kind of insn as it appears in an ErrKind.
func kindName(insn Instruction) string {
	switch insn := insn.(type) {
	case SetRegister:
		return insn.Register.String()
	case Request:
		return insn.Kind.String()
	case Alu:
		return insn.Op.String()
	case Branch:
		return insn.Kind.String()
	}
	return ""
}

// Validate checks the kind and every operand of insn against the layout
// table.
func Validate(insn Instruction) (err error) {
	if insn == nil {
		return ErrInstructionInvalid
	}

	class := insn.Class()
	if !insn.kindValid() {
		return ErrKind{Class: class, Name: kindName(insn)}
	}

	ops := insn.operands()
	for n, slot := range layoutTable[class] {
		if !slot.Fits(ops[n]) {
			return ErrOverflow{Field: slot.Field, Value: ops[n], Width: slot.Width}
		}
	}

	return
}

// Encode validates insn and packs it into a word.
func Encode(insn Instruction) (word Word, err error) {
	err = Validate(insn)
	if err != nil {
		return
	}

	word = makeWord(insn.Class(), insn.operands()...)
	return
}

// Decode unpacks a word. Words that are not the encoding of any
// instruction fail with ErrDecode.
func Decode(word Word) (insn Instruction, err error) {
	get := func(field Field) uint64 {
		value, _ := word.Field(field)
		return value
	}

	switch word.Class() {
	case CLASS_FINISH:
		insn = Finish{}
	case CLASS_SET:
		insn = SetRegister{Register: Register(get(FIELD_KIND)), Immediate: get(FIELD_IMMEDIATE)}
	case CLASS_REQUEST:
		insn = Request{Kind: RequestKind(get(FIELD_KIND)), Immediate: get(FIELD_IMMEDIATE)}
	case CLASS_ALU:
		insn = Alu{Op: AluOp(get(FIELD_KIND)), Operand: get(FIELD_IMMEDIATE)}
	case CLASS_WAIT:
		insn = Wait{Cycles: get(FIELD_CYCLES)}
	case CLASS_BRANCH:
		insn = Branch{Kind: BranchKind(get(FIELD_KIND)), Operand: get(FIELD_OPERAND), Target: get(FIELD_TARGET)}
	default:
		err = fmt.Errorf("%w: %#012x: class %v", ErrDecode, uint64(word), word.Class())
		return
	}

	// Unused bits must be clear, and the kind must be declared.
	check, err := Encode(insn)
	if err != nil {
		insn = nil
		err = fmt.Errorf("%w: %#012x: %w", ErrDecode, uint64(word), err)
		return
	}
	if check != word {
		insn = nil
		err = fmt.Errorf("%w: %#012x", ErrDecode, uint64(word))
		return
	}

	return
}

// MakeSet creates a register load.
func MakeSet(register string, immediate uint64) (insn SetRegister, err error) {
	reg, err := ParseRegister(register)
	if err != nil {
		return
	}

	insn = SetRegister{Register: reg, Immediate: immediate}
	err = Validate(insn)
	return
}

// MakeRequest creates a bus request.
func MakeRequest(kind string, immediate uint64) (insn Request, err error) {
	req, err := ParseRequestKind(kind)
	if err != nil {
		return
	}

	insn = Request{Kind: req, Immediate: immediate}
	err = Validate(insn)
	return
}

// MakeAlu creates an accumulator operation.
func MakeAlu(op string, operand uint64) (insn Alu, err error) {
	alu, err := ParseAluOp(op)
	if err != nil {
		return
	}

	insn = Alu{Op: alu, Operand: operand}
	err = Validate(insn)
	return
}

// MakeWait creates a delay.
func MakeWait(cycles uint64) (insn Wait, err error) {
	insn = Wait{Cycles: cycles}
	err = Validate(insn)
	return
}

// MakeBranch creates a branch. Its target is bound when the program is
// assembled.
func MakeBranch(kind string, operand uint64) (insn Branch, err error) {
	cond, err := ParseBranchKind(kind)
	if err != nil {
		return
	}

	insn = Branch{Kind: cond, Operand: operand}
	err = Validate(insn)
	return
}

// MakeFinish creates a halt.
func MakeFinish() Finish {
	return Finish{}
}
