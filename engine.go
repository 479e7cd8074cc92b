package mathstyle

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/mathstyle/subst"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathstyle'
func tracer() tracing.Trace {
	return tracing.Select("mathstyle")
}

// Registry is a character registry, mapping glyphs to descriptors and back.
// *registry.Registry implements it.
type Registry interface {
	Lookup(glyph rune) style.Option[style.Descriptor]
	Glyph(a style.Alphabet, s style.Style, name string) style.Option[rune]
}

// Apply styles a single character. If target is None, the character is
// re-styled by policy, keeping its weight/slant class.
//
// Characters not in the registry are returned unchanged, as are characters
// which do not exist in the resolved style.
func Apply(t *subst.Tables, reg Registry, r rune, target style.Option[style.Style]) rune {
	d, ok := reg.Lookup(r).Unwrap()
	if !ok {
		return r
	}
	token := target.Or(d.Style.Meta())
	resolved := t.Resolve(d.Alphabet, d.Style, token)
	if g, ok := reg.Glyph(d.Alphabet, resolved, d.Name).Unwrap(); ok {
		return g
	}
	tracer().Debugf("%v has no variant for %s → %s", d, token, resolved)
	return r
}

// Runes returns a sequence of the characters of s, each styled with Apply.
// The sequence is evaluated lazily and may be iterated more than once.
// Bytes of s which are not valid UTF-8 are yielded as utf8.RuneError.
func Runes(t *subst.Tables, reg Registry, s string, target style.Option[style.Style]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(Apply(t, reg, r, target)) {
				return
			}
		}
	}
}

// ApplyString styles every character of s. Bytes of s which are not valid
// UTF-8 are copied unchanged.
func ApplyString(t *subst.Tables, reg Registry, s string, target style.Option[style.Style]) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
		} else {
			sb.WriteRune(Apply(t, reg, r, target))
		}
		i += size
	}
	return sb.String()
}
