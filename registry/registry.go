/*
Package registry provides the character registry for mathematical styling:
an immutable index of every styled glyph of the supported alphabets.

The registry answers two questions: which abstract character (alphabet, name)
and base style does a glyph represent, and which glyph renders a given
character in a given style. The default registry is built once from the
layout of the Unicode Mathematical Alphanumeric Symbols block, with its holes
filled from the Letterlike Symbols block.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathstyle.registry'
func tracer() tracing.Trace {
	return tracing.Select("mathstyle.registry")
}

type charKey struct {
	alphabet style.Alphabet
	style    style.Style
	name     string
}

// Registry is an immutable index of character descriptors. It is safe for
// concurrent use.
type Registry struct {
	descriptors []style.Descriptor
	byGlyph     map[rune]int
	byKey       map[charKey]rune
}

// DataError reports inconsistent registry data.
type DataError struct {
	Descriptor style.Descriptor
	Issue      string
}

// Error implements the error interface.
func (e *DataError) Error() string {
	return fmt.Sprintf("character registry: %v: %s", e.Descriptor, e.Issue)
}

// New creates a registry from a list of descriptors. Glyphs must be unique,
// as must be the combinations of alphabet, style and name. Styles have to
// be base styles.
func New(descriptors []style.Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: slices.Clone(descriptors),
		byGlyph:     make(map[rune]int, len(descriptors)),
		byKey:       make(map[charKey]rune, len(descriptors)),
	}
	for i, d := range r.descriptors {
		if !d.Style.IsBase() {
			return nil, &DataError{Descriptor: d, Issue: "style is not a base style"}
		}
		if _, dup := r.byGlyph[d.Glyph]; dup {
			return nil, &DataError{Descriptor: d, Issue: "duplicate glyph"}
		}
		k := charKey{d.Alphabet, d.Style, d.Name}
		if _, dup := r.byKey[k]; dup {
			return nil, &DataError{Descriptor: d, Issue: "duplicate character"}
		}
		r.byGlyph[d.Glyph] = i
		r.byKey[k] = d.Glyph
	}
	tracer().Debugf("character registry holds %d glyphs", len(r.descriptors))
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New(builtinDescriptors())
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry of Unicode mathematical alphanumeric
// characters. It is built on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup finds the descriptor for glyph g.
func (r *Registry) Lookup(g rune) style.Option[style.Descriptor] {
	if i, ok := r.byGlyph[g]; ok {
		return style.Some(r.descriptors[i])
	}
	return style.None[style.Descriptor]()
}

// Glyph finds the glyph for a character in base style s.
func (r *Registry) Glyph(a style.Alphabet, s style.Style, name string) style.Option[rune] {
	if g, ok := r.byKey[charKey{a, s, name}]; ok {
		return style.Some(g)
	}
	return style.None[rune]()
}

// Variants lists the base styles a character is registered with, in
// canonical order.
func (r *Registry) Variants(a style.Alphabet, name string) []style.Style {
	var variants []style.Style
	for _, s := range style.BaseStyles {
		if _, ok := r.byKey[charKey{a, s, name}]; ok {
			variants = append(variants, s)
		}
	}
	return variants
}

// All iterates over all descriptors in registration order.
func (r *Registry) All() iter.Seq[style.Descriptor] {
	return func(yield func(style.Descriptor) bool) {
		for _, d := range r.descriptors {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of registered glyphs.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
