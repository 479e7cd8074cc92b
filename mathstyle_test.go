package mathstyle

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type StyleTestEnviron struct {
	suite.Suite
	tex *Styler
	iso *Styler
}

// listen for 'go test' command --> run test methods
func TestStyleFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathstyle")
	defer teardown()
	suite.Run(t, new(StyleTestEnviron))
}

// run once, before test suite methods
func (env *StyleTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.tex = env.styler(policy.Default())
	env.iso = env.styler(policy.Make(policy.ISO))
}

// run once, after test suite methods
func (env *StyleTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

func (env *StyleTestEnviron) styler(p policy.Policy) *Styler {
	st, err := New(p)
	env.Require().NoError(err)
	return st
}

var allPolicies = []policy.Policy{
	policy.Make(policy.TeX),
	policy.Make(policy.ISO),
	policy.Make(policy.French),
	policy.Make(policy.Upright),
	policy.Make(policy.Literal),
	policy.Make(policy.TeX, policy.WithSans(style.Literal), policy.WithBold(policy.ISO)),
}

// --- Tests -----------------------------------------------------------------

func (env *StyleTestEnviron) TestTeXScenario() {
	env.Equal("𝑎𝑧", env.tex.Style("az"))
	env.Equal("ΓΞ", env.tex.Style("ΓΞ"))
	env.Equal("𝛼𝛽", env.tex.Style("αβ"))
	env.Equal("𝑥+𝑦=1", env.tex.Style("x+y=1"))
	env.Equal("𝜕𝑓/𝜕𝑥", env.tex.Style("∂f/∂x"))
	env.Equal("∇", env.tex.Style("∇"))
}

func (env *StyleTestEnviron) TestISOScenario() {
	env.Equal("𝛤𝛯", env.iso.Style("ΓΞ"))
	env.Equal("𝑎𝑧", env.iso.Style("az"))
	env.Equal("𝑨", env.iso.StyleAs("A", style.Bf))
	env.Equal("𝐀", env.tex.StyleAs("A", style.Bf))
	env.Equal("𝖠", env.tex.StyleAs("A", style.Sf))
	env.Equal("𝘈", env.iso.StyleAs("A", style.Sf))
}

func (env *StyleTestEnviron) TestGranularNormalStyle() {
	custom := policy.PerAlphabet(style.Literal, style.Upright, style.Upright, style.Italic)
	st := env.styler(policy.Make(policy.TeX, policy.WithNormal(custom)))
	in := []rune{'𝛤', 'Γ', '𝛼', 'α', '𝐴', 'A', '𝑎', 'a'}
	want := []rune{'𝛤', 'Γ', 'α', 'α', 'A', 'A', '𝑎', '𝑎'}
	env.Equal(string(want), st.Style(string(in)))
}

func (env *StyleTestEnviron) TestExplicitTargets() {
	cases := []struct {
		in     string
		target style.Style
		want   string
	}{
		{"abc", style.Tt, "𝚊𝚋𝚌"},
		{"ABC", style.Cal, "𝒜ℬ𝒞"},
		{"RZ", style.Bb, "ℝℤ"},
		{"de", style.Bbit, "ⅆⅇ"},
		{"𝕕", style.It, "ⅆ"},
		{"𝕒", style.It, "𝕒"},
		{"g", style.Frak, "𝔤"},
		{"𝔤", style.Bf, "𝖌"},
		{"𝒜", style.Bf, "𝓐"},
		{"𝐚", style.It, "𝒂"},
		{"𝒂", style.Up, "𝐚"},
		{"𝑎", style.Up, "a"},
		{"12", style.Bb, "𝟙𝟚"},
		{"12", style.It, "12"},
		{"12", style.Bfit, "𝟏𝟐"},
		{"ı", style.It, "𝚤"},
		{"ı", style.Bf, "ı"},
		{"α", style.Sf, "α"},
		{"α", style.Bfsf, "𝝰"},
		{"x ∈ ℝ", style.Bf, "𝐱 ∈ ℝ"},
	}
	for _, c := range cases {
		env.Equal(c.want, env.tex.StyleAs(c.in, c.target), "%q as %s", c.in, c.target)
	}
}

func (env *StyleTestEnviron) TestUnregisteredIdentity() {
	others := []rune{'+', ' ', '\n', 'é', 'ß', '中', '😀', 'ℏ', '∑', 0x1D455, 0}
	tokens := append(append(slices.Clone(style.BaseStyles), style.MetaStyles...), style.CompositeStyles...)
	for _, p := range allPolicies {
		st := env.styler(p)
		for _, r := range others {
			env.Equal(r, st.Rune(r))
			for _, tok := range tokens {
				env.Equal(r, st.RuneAs(r, tok), "%q as %s", r, tok)
			}
		}
	}
}

func (env *StyleTestEnviron) TestInvalidUTF8PassesThrough() {
	env.Equal("𝑎\xff𝑏", env.tex.Style("a\xffb"))
	env.Equal("\xc3", env.tex.StyleAs("\xc3", style.Bf))
	env.Equal("𝑎\uFFFD", env.tex.Style("a\uFFFD"))
	env.Equal([]rune{'𝑎', 0xFFFD, '𝑏'}, slices.Collect(env.tex.Runes("a\xffb")))
}

func (env *StyleTestEnviron) TestZeroStyler() {
	var st Styler
	env.Equal("Γ𝑎", st.Style("Γa"))
	env.Equal("𝐚", st.StyleAs("a", style.Bf))
	env.Require().NoError(st.SetPolicy(policy.Make(policy.ISO)))
	env.Equal("𝛤", st.Style("Γ"))
}

func (env *StyleTestEnviron) TestIdempotence() {
	level := tracing.Select("mathstyle").GetTraceLevel()
	tracing.Select("mathstyle").SetTraceLevel(tracing.LevelError)
	defer tracing.Select("mathstyle").SetTraceLevel(level)
	//
	tokens := append(append(slices.Clone(style.BaseStyles), style.MetaStyles...), style.CompositeStyles...)
	for _, p := range allPolicies {
		st := env.styler(p)
		for d := range registry.Default().All() {
			for _, tok := range tokens {
				once := st.RuneAs(d.Glyph, tok)
				twice := st.RuneAs(once, tok)
				if once != twice {
					env.Failf("not idempotent", "%v as %s under %v: %q then %q", d, tok, p, once, twice)
				}
			}
		}
	}
}

func (env *StyleTestEnviron) TestExplicitTargetIgnoresPreferences() {
	level := tracing.Select("mathstyle").GetTraceLevel()
	tracing.Select("mathstyle").SetTraceLevel(tracing.LevelError)
	defer tracing.Select("mathstyle").SetTraceLevel(level)
	//
	stylers := make([]*Styler, len(allPolicies))
	for i, p := range allPolicies {
		stylers[i] = env.styler(p)
	}
	for d := range registry.Default().All() {
		for _, target := range style.BaseStyles {
			want := stylers[0].RuneAs(d.Glyph, target)
			for i, st := range stylers[1:] {
				env.Equal(want, st.RuneAs(d.Glyph, target),
					"%v as %s differs under %v", d, target, allPolicies[i+1])
			}
		}
	}
}

func (env *StyleTestEnviron) TestRunesRestartable() {
	seq := env.tex.Runes("a+β")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	env.Equal([]rune{'𝑎', '+', '𝛽'}, first)
	env.Equal(first, second)

	n := 0
	for range env.tex.RunesAs("abcdef", style.Bb) {
		n++
		if n == 2 {
			break
		}
	}
	env.Equal(2, n)
}

func (env *StyleTestEnviron) TestRunesKeepSnapshot() {
	st := env.styler(policy.Default())
	seq := st.Runes("Γ")
	env.Require().NoError(st.SetPolicy(policy.Make(policy.ISO)))
	env.Equal([]rune{'Γ'}, slices.Collect(seq))
	env.Equal("𝛤", st.Style("Γ"))
}

func (env *StyleTestEnviron) TestSetPolicyRejectsMalformed() {
	st := env.styler(policy.Default())
	before := st.Tables()
	err := st.SetPolicy(policy.Make(policy.ISO, policy.WithBold(policy.PerAlphabetStyle{UpperGreek: style.Italic})))
	env.ErrorIs(err, policy.ErrIncomplete)
	env.Same(before, st.Tables())
	_, err = New(policy.Make(policy.TeX, policy.WithPartial(style.ShapePreference(9))))
	env.ErrorIs(err, policy.ErrMalformed)
	_, err = New(policy.Make(policy.TeX, policy.WithNormal(&policy.PerAlphabetStyle{UpperGreek: style.Italic})))
	env.ErrorIs(err, policy.ErrIncomplete)
}

func (env *StyleTestEnviron) TestPerAlphabetSpecByPointer() {
	custom := policy.PerAlphabet(style.Upright, style.Italic, style.Italic, style.Italic)
	st := env.styler(policy.Make(policy.TeX, policy.WithNormal(&custom)))
	custom.LowerLatin = style.Upright
	env.Equal("Γ𝑎", st.Style("Γa"))
}

func (env *StyleTestEnviron) TestConcurrentSwap() {
	st := env.styler(policy.Default())
	const input = "aΓα"
	texOut, isoOut := env.tex.Style(input), env.iso.Style(input)
	env.Require().NotEqual(texOut, isoOut)
	var wg sync.WaitGroup
	results := make(chan string, 8*200)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				results <- st.Style(input)
			}
		}()
	}
	for i := range 100 {
		p := policy.Default()
		if i%2 == 0 {
			p = policy.Make(policy.ISO)
		}
		env.Require().NoError(st.SetPolicy(p))
	}
	wg.Wait()
	close(results)
	for r := range results {
		if r != texOut && r != isoOut {
			env.Failf("torn configuration", "result %q mixes configurations", r)
		}
	}
}

func (env *StyleTestEnviron) TestContext() {
	ctx := NewContext(context.Background(), env.iso)
	env.Same(env.iso, FromContext(ctx))
	env.Same(Default(), FromContext(context.Background()))
	env.Equal("𝛤", FromContext(ctx).Style("Γ"))
}

func (env *StyleTestEnviron) TestCustomRegistry() {
	reg, err := registry.New([]style.Descriptor{
		{Name: "x", Alphabet: style.LowerLatin, Style: style.Up, Glyph: 'x'},
		{Name: "x", Alphabet: style.LowerLatin, Style: style.It, Glyph: '𝑥'},
	})
	env.Require().NoError(err)
	st, err := NewWithRegistry(policy.Default(), reg)
	env.Require().NoError(err)
	env.Equal("𝑥y", st.Style("xy"))
	env.Equal("x", st.StyleAs("x", style.Bf))
}

// The default Styler is process-wide; this test restores it.
func TestDefaultShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathstyle")
	defer teardown()
	//
	if got := Style("az"); got != "𝑎𝑧" {
		t.Errorf("expected default policy to be TeX-like, have %q", got)
	}
	checks := []struct{ got, want string }{
		{It("a"), "𝑎"},
		{Up("𝑎"), "a"},
		{Bfup("a"), "𝐚"},
		{Bfit("a"), "𝒂"},
		{Sfup("a"), "𝖺"},
		{Sfit("a"), "𝘢"},
		{Bfsfup("a"), "𝗮"},
		{Bfsfit("a"), "𝙖"},
		{Tt("a"), "𝚊"},
		{Bb("a"), "𝕒"},
		{Bbit("d"), "ⅆ"},
		{Cal("a"), "𝒶"},
		{Bfcal("a"), "𝓪"},
		{Frak("a"), "𝔞"},
		{Bffrak("a"), "𝖆"},
		{Bf("α"), "𝜶"},
		{Sf("a"), "𝖺"},
		{Bfsf("a"), "𝗮"},
		{UP("a"), "𝑎"},
		{IT("𝛤"), "Γ"},
		{BFUP("𝐚"), "𝐚"},
		{BFIT("𝒂"), "𝐚"},
		{SFUP("𝖺"), "𝖺"},
		{SFIT("𝘢"), "𝖺"},
		{BFSFUP("𝗮"), "𝗮"},
		{BFSFIT("𝙖"), "𝗮"},
	}
	for i, c := range checks {
		if c.got != c.want {
			t.Errorf("shorthand #%d: expected %q, have %q", i, c.want, c.got)
		}
	}
	if err := SetDefault(policy.Make(policy.ISO)); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = SetDefault(policy.Default()) }()
	if got := Style("Γ"); got != "𝛤" {
		t.Errorf("expected ISO default to italicize uppercase Greek, have %q", got)
	}
}
