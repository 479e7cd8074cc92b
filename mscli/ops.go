package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathstyle/internal/inspect"
	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/style"
	"github.com/pterm/pterm"
)

func policyOp(intp *Intp, op *Op) (error, bool) {
	if op.arg != "" {
		name := policy.NamedSpec(strings.ToLower(op.arg))
		if !name.Known() {
			pterm.Warning.Printf("%q is not a known convention, falling back to literal\n", name)
		}
		return intp.usePolicy(policy.Make(name)), false
	}
	cfg := intp.styler.Tables().Config
	data := [][]string{
		{"Field", "Setting", "Resolved"},
		{policy.KeyMathStyle, intp.policy.MathStyle.String(), ""},
		{policy.KeyNormalStyle, specString(intp.policy.Normal), policy.ExpandNormal(cfg.Normal).String()},
		{policy.KeyBoldStyle, specString(intp.policy.Bold), policy.ExpandBold(cfg.Bold).String()},
		{policy.KeySansStyle, intp.policy.Sans.String(), cfg.Sans.String()},
		{policy.KeyPartial, intp.policy.Partial.String(), cfg.Partial.String()},
		{policy.KeyNabla, intp.policy.Nabla.String(), cfg.Nabla.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func specString(spec policy.StyleSpec) string {
	if spec == nil {
		return "-"
	}
	return spec.String()
}

// set <key> <value>, e.g. "set bold_style Greek=upright,greek=italic,Latin=upright,latin=upright"
func setOp(intp *Intp, op *Op) (error, bool) {
	key, value, ok := strings.Cut(op.arg, " ")
	if !ok {
		return fmt.Errorf("usage: set <key> <value>"), false
	}
	p, err := intp.policy.Apply(map[string]string{key: value})
	if err != nil {
		return err, false
	}
	return intp.usePolicy(p), false
}

func styleOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return ErrNoArg, false
	}
	pterm.Println(intp.styler.Style(op.arg))
	return nil, false
}

// as <style> <text>
func asOp(intp *Intp, op *Op) (error, bool) {
	name, text, ok := strings.Cut(op.arg, " ")
	if !ok {
		return fmt.Errorf("usage: as <style> <text>"), false
	}
	target, err := style.ParseStyle(name)
	if err != nil {
		return err, false
	}
	pterm.Println(intp.styler.StyleAs(text, target))
	return nil, false
}

// table <alphabet> [<style>]
func tableOp(intp *Intp, op *Op) (error, bool) {
	args := strings.Fields(op.arg)
	if len(args) == 0 {
		return ErrNoArg, false
	}
	a, err := style.ParseAlphabet(args[0])
	if err != nil {
		return err, false
	}
	rows := style.BaseStyles
	if len(args) > 1 {
		s, err := style.ParseStyle(args[1])
		if err != nil {
			return err, false
		}
		rows = []style.Style{s}
	}
	intp.printTransitions(a, rows)
	return nil, false
}

func (intp *Intp) printTransitions(a style.Alphabet, rows []style.Style) {
	t := intp.styler.Tables()
	pterm.Printf("Transitions for %s, sample character %q\n", a, inspect.Sample(a))
	data := [][]string{
		{"Current", "Token", "Resolved", "Glyphs"},
	}
	for _, cur := range rows {
		for _, e := range inspect.Transitions(t, intp.reg, a, cur) {
			data = append(data, []string{
				e.Current.String(),
				e.Token.String(),
				e.Resolved.String(),
				fmt.Sprintf("%s → %s", glyphString(e.From), glyphString(e.To)),
			})
		}
	}
	if len(data) == 1 {
		pterm.Println("(identity)")
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func describeOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return ErrNoArg, false
	}
	data := [][]string{
		{"Glyph", "Code", "Unicode Name", "Character", "Variants"},
	}
	for _, r := range op.arg {
		d := inspect.Describe(intp.reg, r)
		char, variants := "-", "-"
		if c, ok := d.Descriptor.Unwrap(); ok {
			char = c.String()
			names := make([]string, len(d.Variants))
			for i, v := range d.Variants {
				names[i] = v.String()
			}
			variants = strings.Join(names, " ")
		}
		data = append(data, []string{string(r), d.UnicodeID, d.UnicodeName, char, variants})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func glyphString(g rune) string {
	if g == 0 {
		return "-"
	}
	return string(g)
}
