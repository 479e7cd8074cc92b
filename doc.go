/*
Package mathstyle maps characters between Unicode mathematical styles.

Unicode encodes styled variants of Latin and Greek letters, digits, ∂ and ∇:
italic 𝑎, bold 𝐚, fraktur 𝔞, double-struck 𝕒 and many more. This package
renders a character in a requested style, or re-styles it according to a
convention such as the one of TeX: uppercase Greek upright, everything else
italic, bold letters upright.

▪︎ A style policy (package policy) names a convention and may override parts
of it. It is resolved into per-alphabet shape preferences.

▪︎ From these preferences, substitution tables (package subst) are built,
telling which style to look up for a glyph in a given current style.

▪︎ The character registry (package registry) maps glyphs to abstract
characters and back.

A [Styler] ties these together. It owns an immutable snapshot of the tables
which may be replaced atomically; concurrent callers always see either the
old or the new configuration, never a mix.

	st, _ := mathstyle.New(policy.Make(policy.ISO))
	st.Style("ΓΞ")           // "𝛤𝛯"
	st.StyleAs("x", style.Bf) // "𝒙"

Characters without mathematical variants pass through unchanged, as do
requests for styles a character does not exist in.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package mathstyle
