/*
Package style holds the vocabulary of mathematical styling: alphabets, style
tokens and shape preferences.

Unicode encodes styled variants of Latin and Greek letters, digits and a
few operator symbols in the Mathematical Alphanumeric Symbols block
(U+1D400–U+1D7FF), with some holes filled from the Letterlike Symbols block.
We will stick to the following nomenclature:

▪︎ An "alphabet" is a class of abstract characters sharing one substitution
table, e.g. uppercase Greek.

▪︎ A "base style" is a concrete rendering variant with registered glyphs,
e.g. bold italic ("bfit") or fraktur ("frak").

▪︎ A "meta style" (UP, IT, BFUP, …) means "keep the weight/slant class of the
glyph at hand and let the style policy decide on the shape".

▪︎ A "composite style" (bf, sf, bfsf) leaves the shape open; it is resolved
to a base style by preference.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package style
