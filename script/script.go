// Package script runs Starlark programs that build and compile sequencer
// ROM images.
package script

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/apbrom/rom"
)

// Script holds the assembler settings and predeclared integers used by
// each Run.
type Script struct {
	Assembler rom.Assembler

	predefine map[string]int64
}

// Predefine declares an integer global visible to scripts.
func (s *Script) Predefine(name string, value int64) (err error) {
	if _, ok := builtinNames[name]; ok || name == "apb_rom" {
		err = fmt.Errorf("%w: %v", ErrPredefineShadow, name)
		return
	}

	if s.predefine == nil {
		s.predefine = make(map[string]int64)
	}
	s.predefine[name] = value
	return
}

// run is the state of a single script execution.
type run struct {
	script  *Script
	emitted []*rom.Compilation
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

var builtinNames = map[string]struct{}{
	"op_set":             {},
	"op_req":             {},
	"op_alu":             {},
	"op_wait":            {},
	"op_branch":          {},
	"op_finish":          {},
	"compile_program":    {},
	"mif_of_compilation": {},
}

func (r *run) builtins() starlark.StringDict {
	funcs := map[string]builtinFunc{
		"op_set":             r.opSet,
		"op_req":             r.opReq,
		"op_alu":             r.opAlu,
		"op_wait":            r.opWait,
		"op_branch":          r.opBranch,
		"op_finish":          r.opFinish,
		"compile_program":    r.compileProgram,
		"mif_of_compilation": r.mifOfCompilation,
	}

	dict := starlark.StringDict{}
	for name, fn := range funcs {
		dict[name] = starlark.NewBuiltin(name, fn)
	}
	return dict
}

// Run executes a script and returns the compilations it marked for
// emission, in call order. src may be anything starlark.ExecFileOptions
// accepts; nil reads filename.
func (s *Script) Run(filename string, src any) (comps []*rom.Compilation, err error) {
	r := &run{script: s}

	builtins := r.builtins()

	pred := starlark.StringDict{}
	for name, value := range builtins {
		pred[name] = value
	}
	pred["apb_rom"] = starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"rom": starlarkstruct.FromStringDict(starlarkstruct.Default, builtins),
	})
	for name, value := range s.predefine {
		pred[name] = starlark.MakeInt64(value)
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.WithField("script", filename).Info(msg)
		},
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		var eval *starlark.EvalError
		if errors.As(err, &eval) {
			log.WithField("script", filename).Debug(eval.Backtrace())
		}
		err = ErrScript{Filename: filename, Err: err}
		return
	}

	comps = r.emitted
	return
}

// Compile runs a script that must emit exactly one compilation.
func (s *Script) Compile(filename string, src any) (comp *rom.Compilation, err error) {
	comps, err := s.Run(filename, src)
	if err != nil {
		return
	}

	switch len(comps) {
	case 0:
		err = ErrScript{Filename: filename, Err: ErrNoImage}
	case 1:
		comp = comps[0]
	default:
		err = ErrScript{Filename: filename, Err: fmt.Errorf("%w: %v", ErrMultipleImages, len(comps))}
	}
	return
}

func wrapInstruction(insn rom.Instruction, err error) (starlark.Value, error) {
	if err != nil {
		return nil, err
	}
	return instruction{insn: insn}, nil
}

func (r *run) opSet(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "register", &name, "value", &value); err != nil {
		return nil, err
	}
	imm, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	return wrapInstruction(rom.MakeSet(name, imm))
}

func (r *run) opReq(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "kind", &name, "value", &value); err != nil {
		return nil, err
	}
	imm, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	return wrapInstruction(rom.MakeRequest(name, imm))
}

func (r *run) opAlu(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "op", &name, "value", &value); err != nil {
		return nil, err
	}
	operand, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	return wrapInstruction(rom.MakeAlu(name, operand))
}

func (r *run) opWait(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cycles", &value); err != nil {
		return nil, err
	}
	cycles, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	return wrapInstruction(rom.MakeWait(cycles))
}

func (r *run) opBranch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value = starlark.MakeInt(0)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "kind", &name, "operand?", &value); err != nil {
		return nil, err
	}
	operand, err := toUint64(value)
	if err != nil {
		return nil, err
	}
	return wrapInstruction(rom.MakeBranch(name, operand))
}

func (r *run) opFinish(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return instruction{insn: rom.MakeFinish()}, nil
}

// codeOf returns the code list of a program value.
func codeOf(program starlark.Value) (code starlark.Iterable, err error) {
	if mapping, ok := program.(starlark.Mapping); ok {
		var value starlark.Value
		var found bool
		value, found, err = mapping.Get(starlark.String("code"))
		if err != nil {
			return
		}
		if !found {
			err = ErrCodeMissing
			return
		}
		program = value
	}

	code, ok := program.(starlark.Iterable)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrCodeMissing, program.Type())
	}
	return
}

// labelsOf returns the label strings of an entry.
func labelsOf(value starlark.Value) (labels []string, err error) {
	if str, ok := value.(starlark.String); ok {
		labels = []string{string(str)}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = fmt.Errorf("%w: labels are %v", ErrEntryInvalid, value.Type())
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()
	var item starlark.Value
	for iter.Next(&item) {
		str, ok := item.(starlark.String)
		if !ok {
			err = fmt.Errorf("%w: label is %v", ErrEntryInvalid, item.Type())
			return
		}
		labels = append(labels, string(str))
	}
	return
}

// entryOf converts one code element to a program entry.
func entryOf(value starlark.Value) (entry rom.Entry, err error) {
	tuple, ok := value.(starlark.Tuple)
	if !ok || len(tuple) < 1 || len(tuple) > 2 {
		err = fmt.Errorf("%w: %v", ErrEntryInvalid, value)
		return
	}

	insn, ok := tuple[0].(instruction)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrNotInstruction, tuple[0].Type())
		return
	}
	entry.Instruction = insn.insn

	if len(tuple) == 1 {
		return
	}

	labels, err := labelsOf(tuple[1])
	if err != nil {
		return
	}

	for _, label := range labels {
		var slot *string
		name, isDefinition := strings.CutSuffix(label, ":")
		err = rom.CheckLabel(name)
		if err != nil {
			return
		}
		if isDefinition {
			slot = &entry.Definition
		} else {
			slot = &entry.Reference
		}
		if len(*slot) != 0 {
			err = fmt.Errorf("%w: %q", ErrLabelMultiple, label)
			return
		}
		*slot = name
	}
	return
}

func (r *run) compileProgram(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var program starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "program", &program); err != nil {
		return nil, err
	}

	code, err := codeOf(program)
	if err != nil {
		return nil, err
	}

	builder := &rom.Builder{}

	iter := code.Iterate()
	defer iter.Done()
	var value starlark.Value
	for index := 0; iter.Next(&value); index++ {
		entry, err := entryOf(value)
		if err != nil {
			return nil, ErrEntry{Index: index, Err: err}
		}
		err = builder.Append(entry)
		if err != nil {
			return nil, err
		}
	}

	comp, err := r.script.Assembler.Compile(builder.Program())
	if err != nil {
		return nil, err
	}

	for _, warning := range comp.Warnings {
		log.WithField("script", thread.Name).Warn(warning)
	}

	return compilation{comp: comp}, nil
}

func (r *run) mifOfCompilation(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "compilation", &value); err != nil {
		return nil, err
	}

	comp, ok := value.(compilation)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotCompilation, value.Type())
	}

	r.emitted = append(r.emitted, comp.comp)
	return starlark.None, nil
}
