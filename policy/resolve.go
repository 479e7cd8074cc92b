package policy

import "github.com/npillmayer/mathstyle/style"

// Resolved is a style policy with every field populated.
type Resolved struct {
	Normal  StyleSpec
	Bold    StyleSpec
	Sans    style.ShapePreference
	Partial style.ShapePreference
	Nabla   style.ShapePreference
}

type baseline struct {
	nabla, partial style.ShapePreference
	normal, bold   NamedSpec
	sans           style.ShapePreference
}

var baselines = map[NamedSpec]baseline{
	TeX:     {style.Upright, style.Italic, TeX, TeX, style.Upright},
	ISO:     {style.Upright, style.Italic, ISO, ISO, style.Italic},
	French:  {style.Upright, style.Upright, French, Upright, style.Upright},
	Upright: {style.Upright, style.Upright, Upright, Upright, style.Upright},
	Literal: {style.Literal, style.Literal, Literal, Literal, style.Literal},
}

// Resolve expands p into a fully populated configuration. Each override
// present in p replaces the corresponding baseline field, independent of
// all other overrides.
func Resolve(p Policy) Resolved {
	base, ok := baselines[p.MathStyle]
	if !ok {
		tracer().Infof("unrecognized math style %q, using literal baseline", p.MathStyle)
		base = baselines[Literal]
	}
	r := Resolved{
		Normal:  base.normal,
		Bold:    base.bold,
		Sans:    base.sans,
		Partial: base.partial,
		Nabla:   base.nabla,
	}
	if p.Normal != nil {
		r.Normal = specValue(p.Normal)
	}
	if p.Bold != nil {
		r.Bold = specValue(p.Bold)
	}
	if p.Sans != style.Unset {
		r.Sans = p.Sans
	}
	if p.Partial != style.Unset {
		r.Partial = p.Partial
	}
	if p.Nabla != style.Unset {
		r.Nabla = p.Nabla
	}
	tracer().Debugf("resolved %v to %+v", p, r)
	return r
}

// specValue dereferences per-alphabet specs given by pointer.
func specValue(spec StyleSpec) StyleSpec {
	if s, ok := spec.(*PerAlphabetStyle); ok && s != nil {
		return *s
	}
	return spec
}

// Per-alphabet expansions of named specs, ordered (Greek, greek, Latin, latin).
var (
	allItalic  = PerAlphabet(style.Italic, style.Italic, style.Italic, style.Italic)
	allUpright = PerAlphabet(style.Upright, style.Upright, style.Upright, style.Upright)
	allLiteral = PerAlphabet(style.Literal, style.Literal, style.Literal, style.Literal)
)

var normalStyles = map[NamedSpec]PerAlphabetStyle{
	ISO:     allItalic,
	TeX:     PerAlphabet(style.Upright, style.Italic, style.Italic, style.Italic),
	French:  PerAlphabet(style.Upright, style.Upright, style.Upright, style.Italic),
	Upright: allUpright,
}

// There is no dedicated bold table for "french".
var boldStyles = map[NamedSpec]PerAlphabetStyle{
	ISO:     allItalic,
	TeX:     PerAlphabet(style.Upright, style.Italic, style.Upright, style.Upright),
	Upright: allUpright,
}

// ExpandNormal returns the per-alphabet preferences of a normal style spec.
// Explicit per-alphabet specs are returned unchanged; unknown names expand
// to all-literal.
func ExpandNormal(spec StyleSpec) PerAlphabetStyle {
	return expand(spec, normalStyles)
}

// ExpandBold returns the per-alphabet preferences of a bold style spec.
// Explicit per-alphabet specs are returned unchanged; unknown names,
// including "french", expand to all-literal.
func ExpandBold(spec StyleSpec) PerAlphabetStyle {
	return expand(spec, boldStyles)
}

func expand(spec StyleSpec, table map[NamedSpec]PerAlphabetStyle) PerAlphabetStyle {
	switch s := spec.(type) {
	case PerAlphabetStyle:
		return s
	case *PerAlphabetStyle:
		if s != nil {
			return *s
		}
	case NamedSpec:
		if pas, ok := table[s]; ok {
			return pas
		}
	}
	return allLiteral
}
