package rom

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// Symbol is a label bound to a ROM address.
type Symbol struct {
	Name    string `json:"name"`
	Address int    `json:"address"`
}

// SymbolTable maps label names to addresses for a single compilation.
type SymbolTable struct {
	address map[string]int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		address: make(map[string]int, 16),
	}
}

// CheckLabel verifies that name is usable as a label.
func CheckLabel(name string) error {
	if len(name) == 0 || strings.ContainsRune(name, ':') || strings.ContainsFunc(name, unicode.IsSpace) {
		return ErrLabel{Label: name, Err: ErrLabelInvalid}
	}
	return nil
}

// Define binds name to address.
func (st *SymbolTable) Define(name string, address int) (err error) {
	err = CheckLabel(name)
	if err != nil {
		return
	}

	_, ok := st.address[name]
	if ok {
		err = ErrLabel{Label: name, Err: ErrDuplicateLabel}
		return
	}

	st.address[name] = address
	return
}

// Resolve returns the address bound to name.
func (st *SymbolTable) Resolve(name string) (address int, err error) {
	address, ok := st.address[name]
	if !ok {
		err = ErrLabel{Label: name, Err: ErrUndefinedLabel}
	}
	return
}

// Len returns the number of defined labels.
func (st *SymbolTable) Len() int {
	return len(st.address)
}

// Symbols returns the table ordered by address, then name.
func (st *SymbolTable) Symbols() (symbols []Symbol) {
	symbols = make([]Symbol, 0, len(st.address))
	for name, address := range st.address {
		symbols = append(symbols, Symbol{Name: name, Address: address})
	}

	slices.SortFunc(symbols, func(a, b Symbol) int {
		return cmp.Or(cmp.Compare(a.Address, b.Address), strings.Compare(a.Name, b.Name))
	})

	return
}
