package main

import (
	"testing"

	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathstyle")
	defer teardown()
	//
	op := parseCommand("as  bf  x + y")
	assert.Equal(t, AS, op.code)
	assert.Equal(t, "bf  x + y", op.arg)
	op = parseCommand("STYLE αβ")
	assert.Equal(t, STYLE, op.code)
	op = parseCommand("frobnicate")
	assert.Equal(t, HELP, op.code)
}

func TestPolicyCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathstyle")
	defer teardown()
	//
	intp := &Intp{reg: registry.Default()}
	require.NoError(t, intp.loadPolicy(""))
	assert.Equal(t, policy.Default(), intp.policy)

	err, quit := setOp(intp, &Op{code: SET, arg: "sans_style italic"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, style.Italic, intp.policy.Sans)

	err, _ = setOp(intp, &Op{code: SET, arg: "sans_style sideways"})
	assert.Error(t, err)
	assert.Equal(t, style.Italic, intp.policy.Sans, "malformed setting must not change the policy")

	err, _ = policyOp(intp, &Op{code: POLICY, arg: "ISO"})
	require.NoError(t, err)
	assert.Equal(t, policy.Make(policy.ISO), intp.policy)
	assert.Equal(t, "𝛤", intp.styler.Style("Γ"))
}
