package emit

import (
	"encoding/json"
	"io"

	"github.com/ezrec/apbrom/rom"
)

// SymbolMap describes the labels of a compiled image.
type SymbolMap struct {
	Width        int          `json:"width"`
	AddressWidth int          `json:"address_width"`
	Depth        int          `json:"depth"`
	Symbols      []rom.Symbol `json:"symbols"`
}

// NewSymbolMap returns the symbol map of comp.
func NewSymbolMap(comp *rom.Compilation) *SymbolMap {
	symbols := make([]rom.Symbol, len(comp.Symbols))
	copy(symbols, comp.Symbols)

	return &SymbolMap{
		Width:        comp.Image.WordWidth,
		AddressWidth: comp.Image.AddressWidth,
		Depth:        comp.Image.Depth(),
		Symbols:      symbols,
	}
}

// Search returns the labels bound to addr.
func (sm *SymbolMap) Search(addr int) (names []string) {
	for _, sym := range sm.Symbols {
		if sym.Address == addr {
			names = append(names, sym.Name)
		}
	}
	return
}

// ReadFrom reads an exported symbol map.
func (sm *SymbolMap) ReadFrom(r io.Reader) (n int64, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	err = json.Unmarshal(b, sm)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// WriteTo writes the symbol map as indented JSON.
func (sm *SymbolMap) WriteTo(w io.Writer) (n int64, err error) {
	b, err := json.MarshalIndent(sm, "", "  ")
	if err != nil {
		return 0, err
	}
	b = append(b, '\n')

	nn, err := w.Write(b)
	return int64(nn), err
}

// Symbols writes the symbol map of comp as JSON.
func Symbols(w io.Writer, comp *rom.Compilation) (err error) {
	_, err = NewSymbolMap(comp).WriteTo(w)
	return
}
