package rom

import (
	"iter"
	"slices"
)

// Entry is one authored instruction with its optional label annotations.
type Entry struct {
	Instruction Instruction
	Definition  string // Label bound to this instruction's address, if any.
	Reference   string // Label targeted by a branch, if any.
}

// check verifies the entry in isolation.
func (entry Entry) check() (err error) {
	err = Validate(entry.Instruction)
	if err != nil {
		return
	}

	if len(entry.Definition) != 0 {
		err = CheckLabel(entry.Definition)
		if err != nil {
			return
		}
	}

	_, is_branch := entry.Instruction.(Branch)
	switch {
	case is_branch && len(entry.Reference) == 0:
		err = ErrTargetMissing
	case !is_branch && len(entry.Reference) != 0:
		err = ErrLabel{Label: entry.Reference, Err: ErrTargetInvalid}
	case is_branch:
		err = CheckLabel(entry.Reference)
	}

	return
}

// Program is an ordered list of entries. One entry is one ROM word.
type Program struct {
	Entries []Entry
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Entries)
}

// Instructions iterates over the instructions and their addresses.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(address int, insn Instruction) bool) {
		for n, entry := range prog.Entries {
			if !yield(n, entry.Instruction) {
				return
			}
		}
	}
}

// Builder accumulates a program in authoring order.
type Builder struct {
	entries []Entry
	defined map[string]int
}

// Append adds an entry. The entry is rejected if it is malformed or
// defines a label already defined in this build.
func (b *Builder) Append(entry Entry) (err error) {
	index := len(b.entries)

	defer func() {
		if err != nil {
			err = ErrInstruction{Index: index, Err: err}
		}
	}()

	err = entry.check()
	if err != nil {
		return
	}

	if len(entry.Definition) != 0 {
		_, ok := b.defined[entry.Definition]
		if ok {
			err = ErrLabel{Label: entry.Definition, Err: ErrDuplicateLabel}
			return
		}
		if b.defined == nil {
			b.defined = make(map[string]int, 16)
		}
		b.defined[entry.Definition] = index
	}

	b.entries = append(b.entries, entry)
	return
}

// Add appends an unlabeled instruction.
func (b *Builder) Add(insn Instruction) error {
	return b.Append(Entry{Instruction: insn})
}

// Label appends an instruction and binds label to its address.
func (b *Builder) Label(label string, insn Instruction) error {
	return b.Append(Entry{Instruction: insn, Definition: label})
}

// Branch appends a branch to target.
func (b *Builder) Branch(insn Branch, target string) error {
	return b.Append(Entry{Instruction: insn, Reference: target})
}

// Len returns the number of instructions appended so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Program returns a copy of the entries built so far.
func (b *Builder) Program() *Program {
	return &Program{
		Entries: slices.Clone(b.entries),
	}
}
