// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"iter"
	"slices"

	log "github.com/sirupsen/logrus"
)

// Assembler is a two pass assembler and linker for the APB sequencer ROM.
// An Assembler holds no state between compilations.
type Assembler struct {
	MaxDepth int // Maximum number of instructions. Zero selects MAX_DEPTH.
}

// Image is the encoded ROM content.
type Image struct {
	Words        []Word // One word per address.
	WordWidth    int    // Bits per word.
	AddressWidth int    // Bits per address.
}

// Depth returns the number of words in the image.
func (img *Image) Depth() int {
	return len(img.Words)
}

// All iterates over the addresses and words of the image.
func (img *Image) All() iter.Seq2[int, Word] {
	return slices.All(img.Words)
}

// Compilation is the result of assembling a program.
type Compilation struct {
	Program  *Program      // Source program.
	Linked   []Instruction // Instructions with branch targets bound, one per address.
	Image    Image         // Encoded image.
	Symbols  []Symbol      // Labels, ordered by address.
	Warnings []error       // Non-fatal diagnostics.
}

// maxDepth returns the effective depth limit.
func (asm *Assembler) maxDepth() int {
	if asm.MaxDepth <= 0 || asm.MaxDepth > MAX_DEPTH {
		return MAX_DEPTH
	}
	return asm.MaxDepth
}

// assignAddresses is pass 1: every entry takes the next address, and label
// definitions are recorded.
func (asm *Assembler) assignAddresses(prog *Program) (symbols *SymbolTable, err error) {
	symbols = NewSymbolTable()

	for ip, entry := range prog.Entries {
		if entry.Instruction == nil {
			err = ErrInstruction{Index: ip, Err: ErrInstructionInvalid}
			return
		}

		if len(entry.Definition) == 0 {
			continue
		}

		err = symbols.Define(entry.Definition, ip)
		if err != nil {
			err = ErrInstruction{Index: ip, Err: err}
			return
		}

		log.WithFields(log.Fields{"label": entry.Definition, "address": ip}).Debug("rom: define")
	}

	return
}

// link is pass 2 for a single entry: the branch target is bound, and the
// result is validated.
func (asm *Assembler) link(symbols *SymbolTable, entry Entry) (insn Instruction, err error) {
	insn = entry.Instruction

	branch, is_branch := insn.(Branch)
	switch {
	case is_branch:
		if len(entry.Reference) == 0 {
			err = ErrTargetMissing
			return
		}
		var target int
		target, err = symbols.Resolve(entry.Reference)
		if err != nil {
			return
		}
		branch.Target = uint64(target)
		insn = branch
	case len(entry.Reference) != 0:
		err = ErrLabel{Label: entry.Reference, Err: ErrTargetInvalid}
		return
	}

	err = Validate(insn)
	return
}

// Compile assembles a program into an image. The program is not modified.
func (asm *Assembler) Compile(prog *Program) (comp *Compilation, err error) {
	if prog == nil {
		prog = &Program{}
	}

	depth := prog.Len()
	if depth > asm.maxDepth() {
		err = ErrDepth{Count: depth, Max: asm.maxDepth()}
		return
	}

	symbols, err := asm.assignAddresses(prog)
	if err != nil {
		return
	}

	linked := make([]Instruction, 0, depth)
	words := make([]Word, 0, depth)
	for ip, entry := range prog.Entries {
		var insn Instruction
		insn, err = asm.link(symbols, entry)
		if err != nil {
			err = ErrInstruction{Index: ip, Err: err}
			return
		}

		word := makeWord(insn.Class(), insn.operands()...)
		log.WithFields(log.Fields{"address": ip, "word": word}).Debugf("rom: %v", insn)

		linked = append(linked, insn)
		words = append(words, word)
	}

	comp = &Compilation{
		Program: prog,
		Linked:  linked,
		Image: Image{
			Words:        words,
			WordWidth:    WORD_WIDTH,
			AddressWidth: ADDRESS_WIDTH,
		},
		Symbols: symbols.Symbols(),
	}

	if depth > 0 && linked[depth-1].Class() != CLASS_FINISH {
		comp.Warnings = append(comp.Warnings, ErrInstruction{Index: depth - 1, Err: ErrMissingFinish})
	}

	return
}

// Label returns the label defined at address, if any.
func (comp *Compilation) Label(address int) (label string) {
	if address >= 0 && address < comp.Program.Len() {
		label = comp.Program.Entries[address].Definition
	}
	return
}
