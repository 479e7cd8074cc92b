/*
Package policy resolves user-facing style policies into fully populated
per-alphabet style preferences.

A Policy names a baseline convention ("tex", "iso", "french", "upright" or
"literal") and may override any of five fields independently. Resolve turns
it into a Resolved configuration without optional fields, which is the input
for building substitution tables (see package subst).

Unrecognized baseline names are not rejected: they fall through to the
"literal" baseline. Malformed field shapes, such as a per-alphabet style with
an unset entry, are reported by Validate.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package policy

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathstyle.policy'
func tracer() tracing.Trace {
	return tracing.Select("mathstyle.policy")
}

// NamedSpec is the name of a styling convention.
type NamedSpec string

const (
	TeX     NamedSpec = "tex"     // uppercase Greek upright, other letters italic, bold upright
	ISO     NamedSpec = "iso"     // all letters italic, including bold
	French  NamedSpec = "french"  // everything upright except lowercase Latin
	Upright NamedSpec = "upright" // everything upright
	Literal NamedSpec = "literal" // keep the shape of the input
)

// Known reports whether n is one of the conventions with a dedicated table.
func (n NamedSpec) Known() bool {
	switch n {
	case TeX, ISO, French, Upright, Literal:
		return true
	}
	return false
}

func (n NamedSpec) String() string {
	return string(n)
}

func (NamedSpec) isStyleSpec() {}

// StyleSpec is either a NamedSpec or an explicit PerAlphabetStyle, which may
// be given by pointer.
type StyleSpec interface {
	isStyleSpec()
	String() string
}

// PerAlphabetStyle holds one shape preference for each letter alphabet.
type PerAlphabetStyle struct {
	UpperGreek style.ShapePreference
	LowerGreek style.ShapePreference
	UpperLatin style.ShapePreference
	LowerLatin style.ShapePreference
}

func (PerAlphabetStyle) isStyleSpec() {}

// PerAlphabet creates a per-alphabet style from preferences ordered
// (Greek, greek, Latin, latin).
func PerAlphabet(G, g, L, l style.ShapePreference) PerAlphabetStyle {
	return PerAlphabetStyle{UpperGreek: G, LowerGreek: g, UpperLatin: L, LowerLatin: l}
}

// For returns the preference for alphabet a. Alphabets other than the four
// letter alphabets get Unset.
func (s PerAlphabetStyle) For(a style.Alphabet) style.ShapePreference {
	switch a {
	case style.UpperGreek:
		return s.UpperGreek
	case style.LowerGreek:
		return s.LowerGreek
	case style.UpperLatin:
		return s.UpperLatin
	case style.LowerLatin, style.Dotless:
		return s.LowerLatin
	}
	return style.Unset
}

// String renders s in the format understood by FromSettings.
func (s PerAlphabetStyle) String() string {
	return fmt.Sprintf("Greek=%s,greek=%s,Latin=%s,latin=%s",
		s.UpperGreek, s.LowerGreek, s.UpperLatin, s.LowerLatin)
}

func (s PerAlphabetStyle) check(field string) error {
	for _, a := range []style.Alphabet{style.UpperGreek, style.LowerGreek, style.UpperLatin, style.LowerLatin} {
		if !s.For(a).Valid() {
			return errIncomplete(field, a)
		}
	}
	return nil
}

// Policy is the user-facing style configuration. Override fields left at
// their zero value (nil, style.Unset) inherit from the MathStyle baseline.
type Policy struct {
	MathStyle NamedSpec
	Normal    StyleSpec             // normal_style_spec
	Bold      StyleSpec             // bold_style_spec
	Sans      style.ShapePreference // sans_style
	Partial   style.ShapePreference
	Nabla     style.ShapePreference
}

// Default is the TeX-like policy without overrides.
func Default() Policy {
	return Policy{MathStyle: TeX}
}

// Override sets a single field of a policy.
type Override func(*Policy)

// Make creates a policy from a baseline and inline overrides.
func Make(math NamedSpec, overrides ...Override) Policy {
	p := Policy{MathStyle: math}
	for _, o := range overrides {
		o(&p)
	}
	return p
}

func WithNormal(spec StyleSpec) Override {
	return func(p *Policy) { p.Normal = spec }
}

func WithBold(spec StyleSpec) Override {
	return func(p *Policy) { p.Bold = spec }
}

func WithSans(pref style.ShapePreference) Override {
	return func(p *Policy) { p.Sans = pref }
}

func WithPartial(pref style.ShapePreference) Override {
	return func(p *Policy) { p.Partial = pref }
}

func WithNabla(pref style.ShapePreference) Override {
	return func(p *Policy) { p.Nabla = pref }
}

func (p Policy) String() string {
	var sb strings.Builder
	sb.WriteString("math_style=" + string(p.MathStyle))
	if p.Normal != nil {
		sb.WriteString(" normal_style=" + p.Normal.String())
	}
	if p.Bold != nil {
		sb.WriteString(" bold_style=" + p.Bold.String())
	}
	for _, f := range []struct {
		name string
		pref style.ShapePreference
	}{{"sans_style", p.Sans}, {"partial", p.Partial}, {"nabla", p.Nabla}} {
		if f.pref != style.Unset {
			sb.WriteString(" " + f.name + "=" + f.pref.String())
		}
	}
	return sb.String()
}

// Validate checks the shape of every field present in p. Named specs are
// never rejected, even if unknown.
func Validate(p Policy) error {
	if err := checkSpec("normal_style", p.Normal); err != nil {
		return err
	}
	if err := checkSpec("bold_style", p.Bold); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		pref style.ShapePreference
	}{{"sans_style", p.Sans}, {"partial", p.Partial}, {"nabla", p.Nabla}} {
		if f.pref != style.Unset && !f.pref.Valid() {
			return errMalformed(f.name, fmt.Sprintf("invalid shape preference %d", f.pref))
		}
	}
	return nil
}

func checkSpec(field string, spec StyleSpec) error {
	switch s := spec.(type) {
	case nil, NamedSpec:
		return nil
	case PerAlphabetStyle:
		return s.check(field)
	case *PerAlphabetStyle:
		if s == nil {
			return errMalformed(field, "nil per-alphabet style")
		}
		return s.check(field)
	}
	return errMalformed(field, fmt.Sprintf("unsupported style spec %T", spec))
}
