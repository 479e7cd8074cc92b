/*
Package subst builds the style-transition tables driving mathematical
re-styling.

For each alphabet, a substitution table answers the question "given a glyph
currently in style S1 and a requested style token S2, which base style should
be looked up?". A small alias table then maps style tokens without glyphs for
an alphabet to ones that have glyphs (e.g., there are no italic digits).

Both tables are sparse: a missing alphabet, a missing current style or a
missing token all resolve to the requested token itself. Tables are pure
functions of a resolved policy and immutable once built.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package subst

import (
	"maps"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathstyle.subst'
func tracer() tracing.Trace {
	return tracing.Select("mathstyle.subst")
}

// Prefs are the shape preferences driving the substitution table of one
// alphabet.
type Prefs struct {
	Normal style.ShapePreference
	Bold   style.ShapePreference
	Sans   style.ShapePreference
}

// PrefsFor derives the preferences of alphabet a from a resolved policy.
// Digits are always upright; ∂ and ∇ use a single dial for all three.
func PrefsFor(cfg policy.Resolved, a style.Alphabet) Prefs {
	switch a {
	case style.Num:
		return Prefs{style.Upright, style.Upright, style.Upright}
	case style.Partial:
		return Prefs{cfg.Partial, cfg.Partial, cfg.Partial}
	case style.Nabla:
		return Prefs{cfg.Nabla, cfg.Nabla, cfg.Nabla}
	}
	return Prefs{
		Normal: policy.ExpandNormal(cfg.Normal).For(a),
		Bold:   policy.ExpandBold(cfg.Bold).For(a),
		Sans:   cfg.Sans,
	}
}

// Row maps requested style tokens to base styles, for glyphs in one
// current style.
type Row map[style.Style]style.Style

// Table is a substitution table for all alphabets.
type Table struct {
	rows map[style.Alphabet]map[style.Style]Row
}

// Build creates the substitution table for a resolved policy.
func Build(cfg policy.Resolved) *Table {
	t := &Table{rows: make(map[style.Alphabet]map[style.Style]Row, len(style.Alphabets))}
	for _, a := range style.Alphabets {
		if a == style.Dotless {
			continue
		}
		prefs := PrefsFor(cfg, a)
		tracer().Debugf("alphabet %s: %+v", a, prefs)
		t.rows[a] = buildRows(prefs)
	}
	t.rows[style.Dotless] = t.rows[style.LowerLatin]
	return t
}

func buildRows(p Prefs) map[style.Style]Row {
	rows := make(map[style.Style]Row, len(style.BaseStyles))
	for _, s := range style.BaseStyles {
		if row := transitions(s, p); row != nil {
			rows[s] = row
		}
	}
	return rows
}

// Lookup finds the base style to use for a glyph of alphabet a in style
// current, if token is requested. The result is None if any of the three
// table levels has no entry.
func (t *Table) Lookup(a style.Alphabet, current, token style.Style) style.Option[style.Style] {
	if t == nil {
		return style.None[style.Style]()
	}
	rows, ok := t.rows[a]
	if !ok {
		return style.None[style.Style]()
	}
	row, ok := rows[current]
	if !ok {
		return style.None[style.Style]()
	}
	s, ok := row[token]
	if !ok {
		return style.None[style.Style]()
	}
	return style.Some(s)
}

// Resolve is Lookup with the requested token as fallback.
func (t *Table) Resolve(a style.Alphabet, current, token style.Style) style.Style {
	return t.Lookup(a, current, token).Or(token)
}

// Row returns a copy of the transitions for glyphs of alphabet a in style
// current.
func (t *Table) Row(a style.Alphabet, current style.Style) style.Option[Row] {
	if t == nil {
		return style.None[Row]()
	}
	row, ok := t.rows[a][current]
	if !ok {
		return style.None[Row]()
	}
	return style.Some(Row(maps.Clone(row)))
}

// Aliases maps style tokens to base styles for alphabets lacking glyphs in
// some styles.
type Aliases struct {
	m map[style.Alphabet]map[style.Style]style.Style
}

// BuildAliases creates the alias table. It is independent of the policy, but
// built from it to keep the table pair consistent.
func BuildAliases(_ policy.Resolved) *Aliases {
	return &Aliases{m: map[style.Alphabet]map[style.Style]style.Style{
		style.Num: {
			style.It:     style.Up,
			style.Bf:     style.Bfup,
			style.Bfit:   style.Bfup,
			style.Sf:     style.Sfup,
			style.Sfit:   style.Sfup,
			style.Bfsf:   style.Bfsfup,
			style.Bfsfit: style.Bfsfup,
			style.Bbit:   style.Bb,
		},
	}}
}

// Lookup finds an alias for s in alphabet a.
func (al *Aliases) Lookup(a style.Alphabet, s style.Style) style.Option[style.Style] {
	if al == nil {
		return style.None[style.Style]()
	}
	if target, ok := al.m[a][s]; ok {
		return style.Some(target)
	}
	return style.None[style.Style]()
}

// Resolve is Lookup with s as fallback.
func (al *Aliases) Resolve(a style.Alphabet, s style.Style) style.Style {
	return al.Lookup(a, s).Or(s)
}

// Tables is the immutable pair of substitution and alias tables, together
// with the configuration they have been built from.
type Tables struct {
	Config  policy.Resolved
	Subst   *Table
	Aliases *Aliases
}

// BuildTables builds both tables for a resolved configuration.
func BuildTables(cfg policy.Resolved) *Tables {
	return &Tables{
		Config:  cfg,
		Subst:   Build(cfg),
		Aliases: BuildAliases(cfg),
	}
}

// FromPolicy validates, resolves and builds tables for a policy.
func FromPolicy(p policy.Policy) (*Tables, error) {
	if err := policy.Validate(p); err != nil {
		return nil, err
	}
	return BuildTables(policy.Resolve(p)), nil
}

// Resolve runs a requested token through the substitution and alias tables,
// for a glyph of alphabet a in style current. Nil tables resolve every token
// to itself.
func (t *Tables) Resolve(a style.Alphabet, current, token style.Style) style.Style {
	if t == nil {
		return token
	}
	s := t.Subst.Resolve(a, current, token)
	return t.Aliases.Resolve(a, s)
}
