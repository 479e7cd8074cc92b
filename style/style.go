package style

import (
	"fmt"
	"strings"
)

// Alphabet is a class of abstract characters sharing one substitution table.
type Alphabet uint8

const (
	NoAlphabet Alphabet = iota
	Num                 // digits 0…9
	UpperGreek          // "Greek"
	LowerGreek          // "greek"
	UpperLatin          // "Latin"
	LowerLatin          // "latin"
	Dotless             // dotless ı and ȷ, shares the table of lowercase Latin
	Partial             // ∂
	Nabla               // ∇
)

// Alphabets lists all alphabets in canonical order.
var Alphabets = []Alphabet{Num, UpperGreek, LowerGreek, UpperLatin, LowerLatin, Dotless, Partial, Nabla}

var alphabetNames = [...]string{"none", "num", "Greek", "greek", "Latin", "latin", "dotless", "partial", "Nabla"}

func (a Alphabet) String() string {
	if int(a) < len(alphabetNames) {
		return alphabetNames[a]
	}
	return fmt.Sprintf("Alphabet(%d)", a)
}

// ParseAlphabet finds an alphabet by its tag. Tags are case-sensitive, as
// "Greek" and "greek" are different alphabets.
func ParseAlphabet(tag string) (Alphabet, error) {
	for i, name := range alphabetNames {
		if i > 0 && name == tag {
			return Alphabet(i), nil
		}
	}
	return NoAlphabet, fmt.Errorf("unknown alphabet %q", tag)
}

// Style is a requested-style token: a base style, a meta style or a
// composite style.
type Style uint8

// Base styles. Each of them has directly registered glyphs.
const (
	NoStyle Style = iota
	Up            // upright (serif)
	It            // italic
	Bfup          // bold upright
	Bfit          // bold italic
	Sfup          // sans-serif upright
	Sfit          // sans-serif italic
	Bfsfup        // bold sans-serif upright
	Bfsfit        // bold sans-serif italic
	Tt            // monospace
	Bb            // double-struck
	Bbit          // double-struck italic
	Cal           // script
	Bfcal         // bold script
	Frak          // fraktur
	Bffrak        // bold fraktur
	endOfBaseStyles
)

// Meta styles: same weight/slant class as the glyph at hand, shape decided
// by preference.
const (
	UP Style = iota + endOfBaseStyles
	IT
	BFUP
	BFIT
	SFUP
	SFIT
	BFSFUP
	BFSFIT
	endOfMetaStyles
)

// Composite styles with an ambiguous shape.
const (
	Bf Style = iota + endOfMetaStyles
	Sf
	Bfsf
	endOfStyles
)

// BaseStyles lists all base styles in canonical order.
var BaseStyles = []Style{Up, It, Bfup, Bfit, Sfup, Sfit, Bfsfup, Bfsfit, Tt, Bb, Bbit, Cal, Bfcal, Frak, Bffrak}

// MetaStyles lists all meta styles.
var MetaStyles = []Style{UP, IT, BFUP, BFIT, SFUP, SFIT, BFSFUP, BFSFIT}

// CompositeStyles lists all composite styles.
var CompositeStyles = []Style{Bf, Sf, Bfsf}

var styleNames = [...]string{
	"none",
	"up", "it", "bfup", "bfit", "sfup", "sfit", "bfsfup", "bfsfit",
	"tt", "bb", "bbit", "cal", "bfcal", "frak", "bffrak",
	"UP", "IT", "BFUP", "BFIT", "SFUP", "SFIT", "BFSFUP", "BFSFIT",
	"bf", "sf", "bfsf",
}

func (s Style) String() string {
	if s < endOfStyles {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// IsBase is true for styles which have registered glyphs.
func (s Style) IsBase() bool {
	return s > NoStyle && s < endOfBaseStyles
}

// IsMeta is true for UP, IT, BFUP, etc.
func (s Style) IsMeta() bool {
	return s >= UP && s < endOfMetaStyles
}

// IsComposite is true for bf, sf and bfsf.
func (s Style) IsComposite() bool {
	return s >= Bf && s < endOfStyles
}

// Meta returns the meta style of the weight/slant class of s. Base styles
// without such a class (tt, bb, cal, …) and non-base styles map to
// themselves.
func (s Style) Meta() Style {
	if s >= Up && s <= Bfsfit {
		return UP + (s - Up)
	}
	return s
}

// ParseStyle finds a style token by name. Besides the plain token names
// ("bfit", "BFUP", "sf", …) it accepts LaTeX command names of the
// unicode-math package, with or without a leading backslash:
// `\symbf` → bf, `\mathbf` → bfup, `\mathscr` → cal, etc.
func ParseStyle(name string) (Style, error) {
	n := strings.TrimPrefix(strings.TrimSpace(name), `\`)
	if s, ok := lookupStyleName(n); ok {
		return s, nil
	}
	if rest, ok := strings.CutPrefix(n, "sym"); ok {
		if s, ok := lookupStyleName(commandAlias(rest)); ok {
			return s, nil
		}
	} else if rest, ok := strings.CutPrefix(n, "math"); ok {
		switch rest { // \math… commands select a definite shape
		case "bf":
			return Bfup, nil
		case "sf":
			return Sfup, nil
		case "bfsf":
			return Bfsfup, nil
		}
		if s, ok := lookupStyleName(commandAlias(rest)); ok && !s.IsMeta() {
			return s, nil
		}
	}
	return NoStyle, fmt.Errorf("unknown style %q", name)
}

func commandAlias(name string) string {
	switch name {
	case "scr":
		return "cal"
	case "bfscr":
		return "bfcal"
	}
	return name
}

func lookupStyleName(name string) (Style, bool) {
	for i := 1; i < len(styleNames); i++ {
		if styleNames[i] == name {
			return Style(i), true
		}
	}
	return NoStyle, false
}

// ShapePreference is a policy knob telling whether a style family forces a
// shape or respects the shape of the glyph at hand.
type ShapePreference uint8

const (
	Unset   ShapePreference = iota // not given; inherit or reject, depending on context
	Upright                        // force upright shape
	Italic                         // force italic shape
	Literal                        // keep the glyph's own shape
)

var shapeNames = [...]string{"unset", "upright", "italic", "literal"}

func (p ShapePreference) String() string {
	if int(p) < len(shapeNames) {
		return shapeNames[p]
	}
	return fmt.Sprintf("ShapePreference(%d)", p)
}

// Valid is false for Unset and out-of-range values.
func (p ShapePreference) Valid() bool {
	return p >= Upright && p <= Literal
}

// ParseShape reads "upright", "italic" or "literal".
func ParseShape(name string) (ShapePreference, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := 1; i < len(shapeNames); i++ {
		if shapeNames[i] == n {
			return ShapePreference(i), nil
		}
	}
	return Unset, fmt.Errorf("unknown shape preference %q", name)
}

// Descriptor describes a single styled glyph of an abstract character.
// Descriptors are immutable and owned by a character registry.
type Descriptor struct {
	Name     string   // unique within its alphabet, e.g. "alpha"
	Alphabet Alphabet // class of the abstract character
	Style    Style    // always a base style
	Glyph    rune     // the styled rendering
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s/%s=%q", d.Alphabet, d.Name, d.Style, d.Glyph)
}
