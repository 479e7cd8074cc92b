package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "policy", "set":
		pterm.Info.Println("Style Policy")
		pterm.Println(`
	A style policy names a baseline convention and may override five fields:
	+--------------+---------------------------------------------------+
	| math_style   | tex | iso | french | upright | literal            |
	| normal_style | convention, or Greek=..,greek=..,Latin=..,latin=.. |
	| bold_style   | convention, or Greek=..,greek=..,Latin=..,latin=.. |
	| sans_style   | upright | italic | literal                         |
	| partial      | upright | italic | literal                         |
	| nabla        | upright | italic | literal                         |
	+--------------+---------------------------------------------------+
	"policy <convention>" starts over from a baseline,
	"set <field> <value>" overrides a single field.
	`)
	case "style", "styles", "as":
		pterm.Info.Println("Styles")
		pterm.Println(`
	"style <text>" re-styles text by policy, keeping weight and slant.
	"as <style> <text>" renders text in an explicit style:
	+-----------+---------------------------------------------------------+
	| base      | up it bfup bfit sfup sfit bfsfup bfsfit                 |
	|           | tt bb bbit cal bfcal frak bffrak                        |
	| meta      | UP IT BFUP BFIT SFUP SFIT BFSFUP BFSFIT (shape by policy) |
	| composite | bf sf bfsf (shape by policy)                            |
	+-----------+---------------------------------------------------------+
	LaTeX names like \symbfit or \mathbb are understood as well.
	`)
	case "table", "describe":
		pterm.Info.Println("Tables")
		pterm.Println(`
	"table <alphabet> [<style>]" prints the transitions for glyphs of an alphabet,
	where alphabet is one of num, Greek, greek, Latin, latin, dotless, partial, Nabla.
	"describe <text>" prints registry information for every character.
	`)
	default:
		pterm.Info.Println("Commands: policy, set, style, as, table, describe, help <topic>, quit")
	}
}
