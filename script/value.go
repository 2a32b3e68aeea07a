package script

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"

	"github.com/ezrec/apbrom/rom"
)

// instruction is a rom.Instruction as a Starlark value.
type instruction struct {
	insn rom.Instruction
}

var _ starlark.Value = instruction{}

func (v instruction) String() string        { return v.insn.String() }
func (v instruction) Type() string          { return "instruction" }
func (v instruction) Freeze()               {}
func (v instruction) Truth() starlark.Bool  { return starlark.True }
func (v instruction) Hash() (uint32, error) { return starlark.String(v.insn.String()).Hash() }

// compilation is a rom.Compilation as a Starlark value. Indexing yields
// the encoded words.
type compilation struct {
	comp *rom.Compilation
}

var (
	_ starlark.Indexable = compilation{}
	_ starlark.HasAttrs  = compilation{}
)

func (v compilation) String() string {
	return fmt.Sprintf("<compilation depth=%d labels=%d>", v.comp.Image.Depth(), len(v.comp.Symbols))
}
func (v compilation) Type() string          { return "compilation" }
func (v compilation) Freeze()               {}
func (v compilation) Truth() starlark.Bool  { return starlark.True }
func (v compilation) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: compilation") }

func (v compilation) Len() int {
	return v.comp.Image.Depth()
}

func (v compilation) Index(i int) starlark.Value {
	return starlark.MakeUint64(uint64(v.comp.Image.Words[i]))
}

func (v compilation) Attr(name string) (starlark.Value, error) {
	switch name {
	case "depth":
		return starlark.MakeInt(v.comp.Image.Depth()), nil
	case "width":
		return starlark.MakeInt(v.comp.Image.WordWidth), nil
	case "symbols":
		dict := starlark.NewDict(len(v.comp.Symbols))
		for _, sym := range v.comp.Symbols {
			_ = dict.SetKey(starlark.String(sym.Name), starlark.MakeInt(sym.Address))
		}
		dict.Freeze()
		return dict, nil
	}
	return nil, nil
}

func (v compilation) AttrNames() []string {
	return []string{"depth", "symbols", "width"}
}

// toUint64 converts a Starlark integer operand.
func toUint64(value starlark.Value) (u uint64, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrNotInteger, value.Type())
		return
	}

	if i.Sign() < 0 {
		err = fmt.Errorf("%w: %v", ErrNegative, i)
		return
	}

	u, ok = i.Uint64()
	if !ok {
		// Larger than any field; let the layout check name the field.
		u = math.MaxUint64
	}
	return
}
