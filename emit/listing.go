package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/apbrom/rom"
)

// Listing writes a human readable listing of a compilation: one line per
// address with the word, any label defined there, and the instruction.
// Addresses past the program show the decoded fill word.
func Listing(w io.Writer, comp *rom.Compilation, opts Options) (err error) {
	img := &comp.Image
	words, depth, err := opts.words(img)
	if err != nil {
		return
	}

	label_width := 0
	for _, sym := range comp.Symbols {
		label_width = max(label_width, len(sym.Name)+1)
	}

	addr_digits := RADIX_HEX.digits(img.AddressWidth)
	data_digits := RADIX_HEX.digits(img.WordWidth)

	var buf bytes.Buffer
	emit := func(line string) {
		line = strings.TrimRight(line, " ")
		if opts.Width > 0 && len(line) > opts.Width {
			line = line[:opts.Width]
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	emit(fmt.Sprintf("; depth %d, %d bit words, %d labels", depth, img.WordWidth, len(comp.Symbols)))

	for addr, word := range words {
		var text string
		var label string
		if addr < len(comp.Linked) {
			insn := comp.Linked[addr]
			text = insn.String()
			if entry := comp.Program.Entries[addr]; len(entry.Reference) != 0 {
				text += " ; " + entry.Reference
			}
			if def := comp.Label(addr); len(def) != 0 {
				label = def + ":"
			}
		} else if insn, derr := rom.Decode(word); derr == nil {
			text = insn.String() + " ; fill"
		} else {
			text = "; fill"
		}

		emit(fmt.Sprintf("%v  %v  %-*v %v",
			RADIX_HEX.format(uint64(addr), addr_digits),
			RADIX_HEX.format(uint64(word), data_digits),
			label_width, label, text))
	}

	_, err = w.Write(buf.Bytes())
	return
}
