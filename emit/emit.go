// Package emit serializes compiled ROM images.
//
// MIF writes the memory initialization file consumed by the sequencer ROM
// model; Listing and Symbols write companion artifacts for people and
// debuggers. Every emitter renders into memory first, so a failure never
// leaves a partial artifact behind.
package emit

import (
	"io"

	"github.com/ezrec/apbrom/rom"
)

// Write emits comp in the selected format.
func Write(w io.Writer, format Format, comp *rom.Compilation, opts Options) (err error) {
	switch format {
	case FORMAT_MIF:
		err = MIF(w, &comp.Image, opts)
	case FORMAT_LISTING:
		err = Listing(w, comp, opts)
	case FORMAT_SYMBOLS:
		err = Symbols(w, comp)
	default:
		err = ErrName{Name: format.String(), Err: ErrFormatUnknown, Why: ErrFormatUnknown}
	}
	return
}
