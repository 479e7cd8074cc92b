package registry

import (
	"github.com/npillmayer/mathstyle/style"
	"golang.org/x/text/unicode/norm"
)

// Verify checks the registry against Unicode compatibility decompositions:
// every styled glyph must normalize (NFKC) to the same text as the upright
// glyph of its character. Characters without an upright glyph are reported
// as well.
func Verify(r *Registry) []error {
	var errs []error
	for d := range r.All() {
		if d.Style == style.Up {
			continue
		}
		up, ok := r.Glyph(d.Alphabet, style.Up, d.Name).Unwrap()
		if !ok {
			errs = append(errs, &DataError{Descriptor: d, Issue: "no upright form"})
			continue
		}
		if norm.NFKC.String(string(d.Glyph)) != norm.NFKC.String(string(up)) {
			errs = append(errs, &DataError{
				Descriptor: d,
				Issue:      "compatibility decomposition differs from upright form " + string(up),
			})
		}
	}
	if len(errs) > 0 {
		tracer().Errorf("character registry has %d inconsistencies", len(errs))
	}
	return errs
}
