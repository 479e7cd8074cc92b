package inspect

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/mathstyle/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tokens := Tokens()
	assert.Len(t, tokens, len(style.BaseStyles)+len(style.MetaStyles)+len(style.CompositeStyles))
	assert.Equal(t, style.Up, tokens[0])
	assert.Equal(t, style.Bfsf, tokens[len(tokens)-1])
}

func TestSamplesAreRegistered(t *testing.T) {
	reg := registry.Default()
	for _, a := range style.Alphabets {
		require.NotEmpty(t, Sample(a), "no sample for %s", a)
		assert.True(t, reg.Glyph(a, style.Up, Sample(a)).IsSome(), "sample of %s has no upright glyph", a)
	}
}

func TestTransitions(t *testing.T) {
	tables, err := subst.FromPolicy(policy.Default())
	require.NoError(t, err)
	reg := registry.Default()
	entries := Transitions(tables, reg, style.LowerLatin, style.Up)
	require.NotEmpty(t, entries)
	var found bool
	for _, e := range entries {
		assert.Equal(t, 'a', e.From)
		if e.Token == style.UP {
			found = true
			assert.Equal(t, style.It, e.Resolved)
			assert.Equal(t, '𝑎', e.To)
		}
	}
	assert.True(t, found, "expected an entry for token UP")

	// digits have aliases, even where the row has no entry
	for _, e := range Transitions(tables, reg, style.Num, style.Tt) {
		if e.Token == style.It {
			assert.Equal(t, style.Up, e.Resolved)
			assert.Equal(t, '1', e.To)
		}
	}
	assert.Empty(t, Transitions(tables, reg, style.LowerLatin, style.Bfcal))
}

func TestDescribe(t *testing.T) {
	reg := registry.Default()
	d := Describe(reg, '𝑎')
	assert.Equal(t, "U+1D44E", d.UnicodeID)
	assert.Equal(t, "MATHEMATICAL ITALIC SMALL A", d.UnicodeName)
	assert.True(t, d.Descriptor.IsSome())
	assert.Len(t, d.Variants, 14)
	assert.True(t, strings.Contains(d.String(), "latin/a/it"), d.String())

	d = Describe(reg, '+')
	assert.True(t, d.Descriptor.IsNone())
	assert.Empty(t, d.Variants)
	assert.Equal(t, "U+002B PLUS SIGN (not registered)", d.String())
}

func TestParseCodepoints(t *testing.T) {
	runes, err := ParseCodepoints("U+1D44E, 0x3b1 2207")
	require.NoError(t, err)
	assert.Equal(t, []rune{'𝑎', 'α', '∇'}, runes)

	_, err = ParseCodepoints("U+ZZ")
	assert.Error(t, err)
	_, err = ParseCodepoints("110000")
	assert.Error(t, err)
}
