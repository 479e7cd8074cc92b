package main

import (
	"fmt"

	"github.com/npillmayer/mathstyle/internal/inspect"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/thatisuday/commando"
)

func runStyleCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	input := parseTextInput(args["text"], flags["codepoints"])
	st := mustStyler(policyFromFlags(flags))

	var output string
	if t := mustFlagString(flags["target"], "target"); t != "" {
		target, err := style.ParseStyle(t)
		if err != nil {
			fatalf("%v", err)
		}
		output = st.StyleAs(input, target)
	} else {
		output = st.Style(input)
	}
	fmt.Println(output)

	if mustFlagBool(flags["describe"], "describe") {
		reg := registry.Default()
		for _, r := range output {
			fmt.Println(inspect.Describe(reg, r))
		}
	}
}
