package main

import (
	"fmt"

	"github.com/npillmayer/mathstyle/internal/inspect"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/thatisuday/commando"
)

func runDescribeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	input := parseTextInput(args["text"], flags["codepoints"])
	reg := registry.Default()
	for _, r := range input {
		fmt.Println(inspect.Describe(reg, r))
	}
}

func runVerifyCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	reg := registry.Default()
	errs := registry.Verify(reg)
	for _, err := range errs {
		fmt.Printf("error: %s\n", err.Error())
	}
	fmt.Printf("Registry: %d glyphs, %d issues\n", reg.Len(), len(errs))
	if len(errs) > 0 {
		fatalf("registry verification failed")
	}
}
