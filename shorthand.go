package mathstyle

import "github.com/npillmayer/mathstyle/style"

// Shorthands for styling with the default Styler. Each one is equivalent to
// Default().StyleAs(s, style.X) for the style X it is named after.

// Style re-styles s by the default policy.
func Style(s string) string { return Default().Style(s) }

// Base styles
func Up(s string) string { return Default().StyleAs(s, style.Up) }         // upright
func It(s string) string { return Default().StyleAs(s, style.It) }         // italic
func Bfup(s string) string { return Default().StyleAs(s, style.Bfup) }     // bold upright
func Bfit(s string) string { return Default().StyleAs(s, style.Bfit) }     // bold italic
func Sfup(s string) string { return Default().StyleAs(s, style.Sfup) }     // sans-serif upright
func Sfit(s string) string { return Default().StyleAs(s, style.Sfit) }     // sans-serif italic
func Bfsfup(s string) string { return Default().StyleAs(s, style.Bfsfup) } // bold sans-serif upright
func Bfsfit(s string) string { return Default().StyleAs(s, style.Bfsfit) } // bold sans-serif italic
func Tt(s string) string { return Default().StyleAs(s, style.Tt) }         // monospace
func Bb(s string) string { return Default().StyleAs(s, style.Bb) }         // double-struck
func Bbit(s string) string { return Default().StyleAs(s, style.Bbit) }     // double-struck italic
func Cal(s string) string { return Default().StyleAs(s, style.Cal) }       // script
func Bfcal(s string) string { return Default().StyleAs(s, style.Bfcal) }   // bold script
func Frak(s string) string { return Default().StyleAs(s, style.Frak) }     // fraktur
func Bffrak(s string) string { return Default().StyleAs(s, style.Bffrak) } // bold fraktur

// Meta styles: keep the weight/slant class, shape by policy
func UP(s string) string { return Default().StyleAs(s, style.UP) }
func IT(s string) string { return Default().StyleAs(s, style.IT) }
func BFUP(s string) string { return Default().StyleAs(s, style.BFUP) }
func BFIT(s string) string { return Default().StyleAs(s, style.BFIT) }
func SFUP(s string) string { return Default().StyleAs(s, style.SFUP) }
func SFIT(s string) string { return Default().StyleAs(s, style.SFIT) }
func BFSFUP(s string) string { return Default().StyleAs(s, style.BFSFUP) }
func BFSFIT(s string) string { return Default().StyleAs(s, style.BFSFIT) }

// Composite styles
func Bf(s string) string { return Default().StyleAs(s, style.Bf) }     // bold, shape by policy
func Sf(s string) string { return Default().StyleAs(s, style.Sf) }     // sans-serif, shape by policy
func Bfsf(s string) string { return Default().StyleAs(s, style.Bfsf) } // bold sans-serif, shape by policy
