package emit

import (
	"iter"
	"slices"
	"strconv"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/apbrom/internal"
	"github.com/ezrec/apbrom/rom"
)

// Radix is the number base of addresses and data in a memory image.
type Radix int

//go:generate go tool stringer -linecomment -type=Radix
const (
	RADIX_HEX = Radix(0) // HEX
	RADIX_BIN = Radix(1) // BIN
	RADIX_UNS = Radix(2) // UNS
)

// Format is an output artifact type.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_MIF     = Format(0) // mif
	FORMAT_LISTING = Format(1) // listing
	FORMAT_SYMBOLS = Format(2) // symbols
)

var radixTree = prefixtree.New[Radix]()
var formatTree = prefixtree.New[Format]()

func init() {
	radixTree.Add("hex", RADIX_HEX)
	radixTree.Add("binary", RADIX_BIN)
	radixTree.Add("decimal", RADIX_UNS)
	radixTree.Add("unsigned", RADIX_UNS)

	for _, format := range []Format{FORMAT_MIF, FORMAT_LISTING, FORMAT_SYMBOLS} {
		formatTree.Add(format.String(), format)
	}
}

// ParseRadix returns the radix named by name or an unambiguous prefix of
// it: hex, binary, decimal or unsigned.
func ParseRadix(name string) (radix Radix, err error) {
	radix, err = radixTree.FindValue(name)
	if err != nil {
		err = ErrName{Name: name, Err: ErrRadixUnknown, Why: err}
	}
	return
}

// ParseFormat returns the format named by name or an unambiguous prefix of
// it: mif, listing or symbols.
func ParseFormat(name string) (format Format, err error) {
	format, err = formatTree.FindValue(name)
	if err != nil {
		err = ErrName{Name: name, Err: ErrFormatUnknown, Why: err}
	}
	return
}

// Options control the layout of emitted images.
type Options struct {
	Radix Radix    // Radix of addresses and data.
	Depth int      // Fixed image depth. Zero uses the instruction count.
	Fill  rom.Word // Word stored past the last instruction.
	Width int      // Maximum listing line width. Zero is unlimited.
}

// depth returns the depth to emit for img.
func (opts *Options) depth(img *rom.Image) (depth int, err error) {
	depth = img.Depth()
	if opts.Depth == 0 {
		return
	}

	limit := 1 << img.AddressWidth
	switch {
	case opts.Depth < depth:
		err = ErrDepthTooSmall
	case opts.Depth > limit:
		err = ErrDepthTooLarge
	default:
		depth = opts.Depth
	}

	return
}

// words returns the image words followed by fill words up to the
// emitted depth.
func (opts *Options) words(img *rom.Image) (words iter.Seq2[int, rom.Word], depth int, err error) {
	depth, err = opts.depth(img)
	if err != nil {
		return
	}

	if uint64(opts.Fill) >= uint64(1)<<img.WordWidth {
		err = ErrFillInvalid
		return
	}

	words = internal.IterSeq2Concat(img.All(), internal.IterSeq2Fill(img.Depth(), depth, opts.Fill))
	return
}

// digits returns the number of digits needed for a value of width bits.
func (radix Radix) digits(width int) int {
	switch radix {
	case RADIX_BIN:
		return width
	case RADIX_UNS:
		return len(radix.format(^uint64(0)>>(64-width), 0))
	default:
		return (width + 3) / 4
	}
}

// format renders value zero padded to digits.
func (radix Radix) format(value uint64, digits int) string {
	var base int
	switch radix {
	case RADIX_BIN:
		base = 2
	case RADIX_UNS:
		base = 10
	default:
		base = 16
	}

	text := []byte(strconv.FormatUint(value, base))
	if pad := digits - len(text); pad > 0 {
		text = append(slices.Repeat([]byte{'0'}, pad), text...)
	}

	return string(text)
}
