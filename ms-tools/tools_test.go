package main

import (
	"testing"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/style"
	"github.com/stretchr/testify/assert"
	"github.com/thatisuday/commando"
)

func stringFlag(value string) commando.FlagValue {
	return commando.FlagValue{Flag: commando.Flag{DataType: commando.String}, Value: value}
}

func TestTextInputKeepsSpacesAndCommas(t *testing.T) {
	text := commando.ArgValue{Value: "f(x, y) = x y"}
	assert.Equal(t, "f(x, y) = x y", parseTextInput(text, stringFlag("-")))
	assert.Equal(t, "𝑎α", parseTextInput(text, stringFlag("U+1D44E, 0x3B1")))
}

func TestPolicyFlags(t *testing.T) {
	flags := map[string]commando.FlagValue{"policy": stringFlag("-")}
	for name := range policyFlags {
		flags[name] = stringFlag("-")
	}
	flags["math-style"] = stringFlag("iso")
	flags["nabla"] = stringFlag(" italic ")
	p := policyFromFlags(flags)
	assert.Equal(t, policy.Make(policy.ISO, policy.WithNabla(style.Italic)), p)
}
