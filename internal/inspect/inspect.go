/*
Package inspect prepares style tables and registry entries for display.
It is shared by the command line tools.
*/
package inspect

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/mathstyle/subst"
	"golang.org/x/text/unicode/runenames"
)

// Tokens lists all style tokens in canonical order: base styles, meta styles
// and composite styles.
func Tokens() []style.Style {
	tokens := slices.Clone(style.BaseStyles)
	tokens = append(tokens, style.MetaStyles...)
	return append(tokens, style.CompositeStyles...)
}

var samples = map[style.Alphabet]string{
	style.Num:        "one",
	style.UpperGreek: "Gamma",
	style.LowerGreek: "alpha",
	style.UpperLatin: "A",
	style.LowerLatin: "a",
	style.Dotless:    "imath",
	style.Partial:    "partial",
	style.Nabla:      "nabla",
}

// Sample returns the name of a character used to illustrate alphabet a.
func Sample(a style.Alphabet) string {
	return samples[a]
}

// Transition is a single table entry, illustrated with sample glyphs.
// Glyphs are 0 if the sample character has no variant in a style.
type Transition struct {
	Current  style.Style
	Token    style.Style
	Resolved style.Style
	From, To rune
}

// Transitions lists the entries of the table row for glyphs of alphabet a in
// style cur. Tokens without an entry in either table are omitted, as they
// resolve to themselves.
func Transitions(t *subst.Tables, reg *registry.Registry, a style.Alphabet, cur style.Style) []Transition {
	name := Sample(a)
	from := reg.Glyph(a, cur, name).Or(0)
	var entries []Transition
	for _, token := range Tokens() {
		s := t.Subst.Lookup(a, cur, token)
		if s.IsNone() && t.Aliases.Lookup(a, token).IsNone() {
			continue
		}
		resolved := t.Resolve(a, cur, token)
		entries = append(entries, Transition{
			Current:  cur,
			Token:    token,
			Resolved: resolved,
			From:     from,
			To:       reg.Glyph(a, resolved, name).Or(0),
		})
	}
	return entries
}

// Description collects what is known about a single character.
type Description struct {
	Glyph       rune
	UnicodeID   string // e.g. "U+1D44E"
	UnicodeName string
	Descriptor  style.Option[style.Descriptor]
	Variants    []style.Style
}

// Describe looks up r in the registry.
func Describe(reg *registry.Registry, r rune) Description {
	desc := Description{
		Glyph:       r,
		UnicodeID:   fmt.Sprintf("U+%04X", r),
		UnicodeName: runenames.Name(r),
		Descriptor:  reg.Lookup(r),
	}
	if d, ok := desc.Descriptor.Unwrap(); ok {
		desc.Variants = reg.Variants(d.Alphabet, d.Name)
	}
	return desc
}

func (d Description) String() string {
	c, ok := d.Descriptor.Unwrap()
	if !ok {
		return fmt.Sprintf("%s %s (not registered)", d.UnicodeID, d.UnicodeName)
	}
	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = v.String()
	}
	return fmt.Sprintf("%s %s: %v, variants [%s]", d.UnicodeID, d.UnicodeName, c,
		strings.Join(names, " "))
}

// ParseCodepoints parses a list of code points, separated by commas or
// spaces. Code points are hexadecimal, optionally prefixed by "U+" or "0x".
func ParseCodepoints(spec string) ([]rune, error) {
	parts := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepoint(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepoint(token string) (rune, error) {
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint out of range: %q", token)
	}
	return rune(u), nil
}
