// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ezrec/apbrom/rom"
)

// MIF writes img as a memory initialization file.
//
// The header declares the data width, the depth, both radixes and (as a
// comment, since the format has no keyword for it) the address width. The
// body has one 'ADDRESS : DATA;' line per address in increasing order, and
// is closed by 'END;'. Nothing is written if the image cannot be emitted.
func MIF(w io.Writer, img *rom.Image, opts Options) (err error) {
	words, depth, err := opts.words(img)
	if err != nil {
		return
	}

	addr_digits := opts.Radix.digits(img.AddressWidth)
	data_digits := opts.Radix.digits(img.WordWidth)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "-- APB sequencer ROM image\n")
	fmt.Fprintf(&buf, "-- ADDRESS_WIDTH=%d;\n", img.AddressWidth)
	fmt.Fprintf(&buf, "WIDTH=%d;\n", img.WordWidth)
	fmt.Fprintf(&buf, "DEPTH=%d;\n", depth)
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "ADDRESS_RADIX=%v;\n", opts.Radix)
	fmt.Fprintf(&buf, "DATA_RADIX=%v;\n", opts.Radix)
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "CONTENT BEGIN\n")
	for addr, word := range words {
		fmt.Fprintf(&buf, "\t%v : %v;\n",
			opts.Radix.format(uint64(addr), addr_digits),
			opts.Radix.format(uint64(word), data_digits))
	}
	fmt.Fprintf(&buf, "END;\n")

	_, err = w.Write(buf.Bytes())
	return
}
