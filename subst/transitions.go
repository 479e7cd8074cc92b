package subst

import "github.com/npillmayer/mathstyle/style"

// pick selects a style by shape preference.
func pick(pref style.ShapePreference, upright, italic, literal style.Style) style.Style {
	switch pref {
	case style.Upright:
		return upright
	case style.Italic:
		return italic
	}
	return literal
}

// identity maps every base style to itself.
func identity() Row {
	row := make(Row, len(style.BaseStyles)+8)
	for _, s := range style.BaseStyles {
		row[s] = s
	}
	return row
}

// transitions creates the row for glyphs currently in base style cur.
// Styles without weight/slant variants get small structural rows that do
// not depend on preferences. A nil row means identity for every token.
func transitions(cur style.Style, p Prefs) Row {
	switch cur {
	case style.Up:
		row := identity()
		row[style.UP] = pick(p.Normal, style.Up, style.It, style.Up)
		row[style.Bf] = pick(p.Bold, style.Bfup, style.Bfit, style.Bfup)
		row[style.Sf] = pick(p.Sans, style.Sfup, style.Sfit, style.Sfup)
		row[style.Bfsf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfup)
		return row
	case style.It:
		row := identity()
		row[style.IT] = pick(p.Normal, style.Up, style.It, style.It)
		row[style.Bf] = pick(p.Bold, style.Bfup, style.Bfit, style.Bfit)
		row[style.Sf] = pick(p.Sans, style.Sfup, style.Sfit, style.Sfit)
		row[style.Bfsf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfit)
		return row
	case style.Bfup:
		row := identity()
		row[style.Up] = style.Bfup
		row[style.Bf] = style.Bfup
		row[style.It] = style.Bfit
		row[style.BFUP] = pick(p.Bold, style.Bfup, style.Bfit, style.Bfup)
		row[style.Sf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfup)
		row[style.Bfsf] = row[style.Sf]
		return row
	case style.Bfit:
		row := identity()
		row[style.It] = style.Bfit
		row[style.Bf] = style.Bfit
		row[style.Up] = style.Bfup
		row[style.BFIT] = pick(p.Bold, style.Bfup, style.Bfit, style.Bfit)
		row[style.Sf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfit)
		row[style.Bfsf] = row[style.Sf]
		return row
	case style.Sfup:
		row := identity()
		row[style.Up] = style.Sfup
		row[style.Sf] = style.Sfup
		row[style.It] = style.Sfit
		row[style.SFUP] = pick(p.Sans, style.Sfup, style.Sfit, style.Sfup)
		row[style.Bf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfup)
		row[style.Bfsf] = row[style.Bf]
		return row
	case style.Sfit:
		row := identity()
		row[style.It] = style.Sfit
		row[style.Sf] = style.Sfit
		row[style.Up] = style.Sfup
		row[style.SFIT] = pick(p.Sans, style.Sfup, style.Sfit, style.Sfit)
		row[style.Bf] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfit)
		row[style.Bfsf] = row[style.Bf]
		return row
	case style.Bfsfup:
		row := identity()
		row[style.Up] = style.Bfsfup
		row[style.Bf] = style.Bfsfup
		row[style.Sf] = style.Bfsfup
		row[style.Bfsf] = style.Bfsfup
		row[style.It] = style.Bfsfit
		row[style.BFSFUP] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfup)
		return row
	case style.Bfsfit:
		row := identity()
		row[style.It] = style.Bfsfit
		row[style.Bf] = style.Bfsfit
		row[style.Sf] = style.Bfsfit
		row[style.Bfsf] = style.Bfsfit
		row[style.Up] = style.Bfsfup
		row[style.BFSFIT] = pick(p.Sans, style.Bfsfup, style.Bfsfit, style.Bfsfit)
		return row
	case style.Tt:
		return Row{style.Tt: style.Tt, style.Up: style.Tt}
	case style.Bb:
		return Row{style.Bb: style.Bb, style.Up: style.Bb, style.It: style.Bbit}
	case style.Bbit:
		return Row{style.Bb: style.Bbit, style.It: style.Bbit, style.Up: style.Bb}
	case style.Cal:
		return Row{style.Cal: style.Cal, style.Up: style.Cal, style.Bf: style.Bfcal}
	case style.Bfcal:
		return nil
	case style.Frak:
		return Row{style.Frak: style.Frak, style.Up: style.Frak, style.Bf: style.Bffrak}
	case style.Bffrak:
		return Row{style.Frak: style.Bffrak, style.Up: style.Bffrak, style.Bf: style.Bffrak}
	}
	tracer().Errorf("no transitions for style %s", cur)
	return nil
}
