package mathstyle

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/mathstyle/subst"
)

// Styler applies mathematical styles according to a style policy.
//
// A Styler is safe for concurrent use. Its configuration is an immutable
// table snapshot, which SetPolicy replaces as a whole. The zero value styles
// by the default policy, using the default character registry.
type Styler struct {
	registry Registry
	tables   atomic.Pointer[subst.Tables]
}

// New creates a Styler for policy p, using the default character registry.
func New(p policy.Policy) (*Styler, error) {
	return NewWithRegistry(p, registry.Default())
}

// NewWithRegistry creates a Styler for policy p, using a custom character
// registry.
func NewWithRegistry(p policy.Policy, reg Registry) (*Styler, error) {
	st := &Styler{registry: reg}
	if err := st.SetPolicy(p); err != nil {
		return nil, err
	}
	return st, nil
}

// SetPolicy builds tables for p and installs them. If p is malformed, the
// current configuration stays in place.
func (st *Styler) SetPolicy(p policy.Policy) error {
	t, err := subst.FromPolicy(p)
	if err != nil {
		return err
	}
	st.tables.Store(t)
	tracer().Debugf("styler uses policy %v", p)
	return nil
}

// Tables returns the current table snapshot.
func (st *Styler) Tables() *subst.Tables {
	if t := st.tables.Load(); t != nil {
		return t
	}
	return defaultTables()
}

// Registry returns the character registry of st.
func (st *Styler) Registry() Registry {
	if st.registry == nil {
		return registry.Default()
	}
	return st.registry
}

// Rune re-styles r by policy.
func (st *Styler) Rune(r rune) rune {
	return Apply(st.Tables(), st.Registry(), r, style.None[style.Style]())
}

// RuneAs renders r in style target.
func (st *Styler) RuneAs(r rune, target style.Style) rune {
	return Apply(st.Tables(), st.Registry(), r, style.Some(target))
}

// Style re-styles every character of s by policy.
func (st *Styler) Style(s string) string {
	return ApplyString(st.Tables(), st.Registry(), s, style.None[style.Style]())
}

// StyleAs renders every character of s in style target.
func (st *Styler) StyleAs(s string, target style.Style) string {
	return ApplyString(st.Tables(), st.Registry(), s, style.Some(target))
}

// Runes is the lazy variant of Style. The sequence keeps using the
// configuration current at the time of the call.
func (st *Styler) Runes(s string) iter.Seq[rune] {
	return Runes(st.Tables(), st.Registry(), s, style.None[style.Style]())
}

// RunesAs is the lazy variant of StyleAs.
func (st *Styler) RunesAs(s string, target style.Style) iter.Seq[rune] {
	return Runes(st.Tables(), st.Registry(), s, style.Some(target))
}

// --- Default configuration -------------------------------------------------

var defaultTables = sync.OnceValue(func() *subst.Tables {
	t, err := subst.FromPolicy(policy.Default())
	if err != nil {
		panic(err)
	}
	return t
})

var defaultStyler = sync.OnceValue(func() *Styler {
	st, err := New(policy.Default())
	if err != nil {
		panic(err)
	}
	return st
})

// Default returns the process-wide Styler, initially configured with the
// TeX-like default policy.
func Default() *Styler {
	return defaultStyler()
}

// SetDefault replaces the policy of the process-wide Styler.
func SetDefault(p policy.Policy) error {
	return Default().SetPolicy(p)
}

type stylerKey struct{}

// NewContext returns a copy of ctx carrying st.
func NewContext(ctx context.Context, st *Styler) context.Context {
	return context.WithValue(ctx, stylerKey{}, st)
}

// FromContext returns the Styler carried by ctx, or the default Styler.
func FromContext(ctx context.Context) *Styler {
	if st, ok := ctx.Value(stylerKey{}).(*Styler); ok && st != nil {
		return st
	}
	return Default()
}
