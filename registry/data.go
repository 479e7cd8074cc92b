package registry

import "github.com/npillmayer/mathstyle/style"

// Start of the 52 letters A…Z, a…z for each style in the Mathematical
// Alphanumeric Symbols block.
var latinBlocks = []struct {
	style style.Style
	base  rune
}{
	{style.Bfup, 0x1D400},
	{style.It, 0x1D434},
	{style.Bfit, 0x1D468},
	{style.Cal, 0x1D49C},
	{style.Bfcal, 0x1D4D0},
	{style.Frak, 0x1D504},
	{style.Bb, 0x1D538},
	{style.Bffrak, 0x1D56C},
	{style.Sfup, 0x1D5A0},
	{style.Bfsfup, 0x1D5D4},
	{style.Sfit, 0x1D608},
	{style.Bfsfit, 0x1D63C},
	{style.Tt, 0x1D670},
}

// Reserved code points of the block; these letters live in the Letterlike
// Symbols block.
var letterlike = map[style.Style]map[rune]rune{
	style.It: {'h': 0x210E},
	style.Cal: {
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	},
	style.Frak: {'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128},
	style.Bb: {
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	},
}

// Greek styles cover 58 code points each: 25 capitals, ∇, 25 small letters,
// ∂ and 6 letter variants.
var greekBlocks = []struct {
	style style.Style
	base  rune
}{
	{style.Bfup, 0x1D6A8},
	{style.It, 0x1D6E2},
	{style.Bfit, 0x1D71C},
	{style.Bfsfup, 0x1D756},
	{style.Bfsfit, 0x1D790},
}

const (
	greekNablaOffset   = 25
	greekSmallOffset   = 26
	greekPartialOffset = 51
	greekVariantOffset = 52
)

var upperGreekNames = [25]string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi", "Rho",
	"varTheta", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

var lowerGreekNames = [25]string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi", "rho",
	"varsigma", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

var greekVariants = [6]struct {
	name  string
	glyph rune
}{
	{"varepsilon", 0x03F5},
	{"vartheta", 0x03D1},
	{"varkappa", 0x03F0},
	{"varphi", 0x03D5},
	{"varrho", 0x03F1},
	{"varpi", 0x03D6},
}

var digitBlocks = []struct {
	style style.Style
	base  rune
}{
	{style.Bfup, 0x1D7CE},
	{style.Bb, 0x1D7D8},
	{style.Sfup, 0x1D7E2},
	{style.Bfsfup, 0x1D7EC},
	{style.Tt, 0x1D7F6},
}

var digitNames = [10]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Characters outside of the regular block layout.
var extraDescriptors = []style.Descriptor{
	{Name: "imath", Alphabet: style.Dotless, Style: style.Up, Glyph: 0x0131},
	{Name: "jmath", Alphabet: style.Dotless, Style: style.Up, Glyph: 0x0237},
	{Name: "imath", Alphabet: style.Dotless, Style: style.It, Glyph: 0x1D6A4},
	{Name: "jmath", Alphabet: style.Dotless, Style: style.It, Glyph: 0x1D6A5},
	{Name: "D", Alphabet: style.UpperLatin, Style: style.Bbit, Glyph: 0x2145},
	{Name: "d", Alphabet: style.LowerLatin, Style: style.Bbit, Glyph: 0x2146},
	{Name: "e", Alphabet: style.LowerLatin, Style: style.Bbit, Glyph: 0x2147},
	{Name: "i", Alphabet: style.LowerLatin, Style: style.Bbit, Glyph: 0x2148},
	{Name: "j", Alphabet: style.LowerLatin, Style: style.Bbit, Glyph: 0x2149},
	{Name: "pi", Alphabet: style.LowerGreek, Style: style.Bb, Glyph: 0x213C},
	{Name: "gamma", Alphabet: style.LowerGreek, Style: style.Bb, Glyph: 0x213D},
	{Name: "Gamma", Alphabet: style.UpperGreek, Style: style.Bb, Glyph: 0x213E},
	{Name: "Pi", Alphabet: style.UpperGreek, Style: style.Bb, Glyph: 0x213F},
	{Name: "Digamma", Alphabet: style.UpperGreek, Style: style.Up, Glyph: 0x03DC},
	{Name: "digamma", Alphabet: style.LowerGreek, Style: style.Up, Glyph: 0x03DD},
	{Name: "Digamma", Alphabet: style.UpperGreek, Style: style.Bfup, Glyph: 0x1D7CA},
	{Name: "digamma", Alphabet: style.LowerGreek, Style: style.Bfup, Glyph: 0x1D7CB},
}

// builtinDescriptors lays out all registered glyphs.
func builtinDescriptors() []style.Descriptor {
	descs := make([]style.Descriptor, 0, 1200)
	add := func(a style.Alphabet, s style.Style, name string, g rune) {
		descs = append(descs, style.Descriptor{Name: name, Alphabet: a, Style: s, Glyph: g})
	}
	// Latin
	for i := range 26 {
		add(style.UpperLatin, style.Up, string(rune('A'+i)), rune('A'+i))
		add(style.LowerLatin, style.Up, string(rune('a'+i)), rune('a'+i))
	}
	for _, blk := range latinBlocks {
		for i := range 52 {
			a, letter := style.UpperLatin, rune('A'+i)
			if i >= 26 {
				a, letter = style.LowerLatin, rune('a'+i-26)
			}
			g := blk.base + rune(i)
			if hole, ok := letterlike[blk.style][letter]; ok {
				g = hole
			}
			add(a, blk.style, string(letter), g)
		}
	}
	// Greek, ∇ and ∂
	for i := range 25 {
		upper := rune(0x0391 + i)
		if i == 17 { // U+03A2 is unassigned, the block has ϴ at this position
			upper = 0x03F4
		}
		add(style.UpperGreek, style.Up, upperGreekNames[i], upper)
		add(style.LowerGreek, style.Up, lowerGreekNames[i], rune(0x03B1+i))
	}
	for _, v := range greekVariants {
		add(style.LowerGreek, style.Up, v.name, v.glyph)
	}
	add(style.Nabla, style.Up, "nabla", 0x2207)
	add(style.Partial, style.Up, "partial", 0x2202)
	for _, blk := range greekBlocks {
		for i := range 25 {
			add(style.UpperGreek, blk.style, upperGreekNames[i], blk.base+rune(i))
			add(style.LowerGreek, blk.style, lowerGreekNames[i], blk.base+greekSmallOffset+rune(i))
		}
		add(style.Nabla, blk.style, "nabla", blk.base+greekNablaOffset)
		add(style.Partial, blk.style, "partial", blk.base+greekPartialOffset)
		for i, v := range greekVariants {
			add(style.LowerGreek, blk.style, v.name, blk.base+greekVariantOffset+rune(i))
		}
	}
	// digits
	for i := range 10 {
		add(style.Num, style.Up, digitNames[i], rune('0'+i))
		for _, blk := range digitBlocks {
			add(style.Num, blk.style, digitNames[i], blk.base+rune(i))
		}
	}
	descs = append(descs, extraDescriptors...)
	tracer().Debugf("laid out %d glyphs", len(descs))
	return descs
}
