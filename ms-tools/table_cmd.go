package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathstyle/internal/inspect"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/mathstyle/style"
	"github.com/thatisuday/commando"
)

func runTableCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	a, err := style.ParseAlphabet(strings.TrimSpace(args["alphabet"].Value))
	if err != nil {
		fatalf("%v", err)
	}
	rows := style.BaseStyles
	if raw := strings.TrimSpace(args["styles"].Value); raw != "" {
		rows = parseStyleList(raw)
	}
	p := policyFromFlags(flags)
	st := mustStyler(p)
	reg := registry.Default()

	fmt.Printf("Policy: %v\n", p)
	fmt.Printf("Alphabet: %s (sample %q)\n", a, inspect.Sample(a))
	for _, cur := range rows {
		entries := inspect.Transitions(st.Tables(), reg, a, cur)
		if len(entries) == 0 {
			fmt.Printf("%-7s (identity)\n", cur)
			continue
		}
		for _, e := range entries {
			fmt.Printf("%-7s %-7s -> %-7s %s -> %s\n", e.Current, e.Token, e.Resolved,
				formatGlyph(e.From), formatGlyph(e.To))
		}
	}
}

func parseStyleList(raw string) []style.Style {
	var styles []style.Style
	for _, item := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		s, err := style.ParseStyle(item)
		if err != nil {
			fatalf("%v", err)
		}
		if !s.IsBase() {
			fatalf("table rows exist for base styles only, have %s", s)
		}
		styles = append(styles, s)
	}
	return styles
}

func formatGlyph(g rune) string {
	if g == 0 {
		return "-"
	}
	return string(g)
}
