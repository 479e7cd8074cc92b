package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/mathstyle"
	"github.com/npillmayer/mathstyle/internal/inspect"
	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("ms-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for styling text with Unicode mathematical alphanumeric characters.")

	commando.
		Register("style").
		SetDescription("Re-style text by a style policy, or render it in an explicit style.").
		SetShortDescription("style text").
		AddArgument("text", "text to style, quoted if it contains spaces", "-").
		AddFlag("target,t", "explicit style (e.g. bf, it, bb, frak, \\symbfit, \\mathcal)", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+03B1)", commando.String, "-").
		AddFlag("policy,p", "YAML file holding a style policy", commando.String, "-").
		AddFlag("math-style,m", "baseline convention: tex|iso|french|upright|literal", commando.String, "-").
		AddFlag("normal", "normal style (convention or Greek=..,greek=..,Latin=..,latin=..)", commando.String, "-").
		AddFlag("bold", "bold style (convention or Greek=..,greek=..,Latin=..,latin=..)", commando.String, "-").
		AddFlag("sans", "sans-serif shape: upright|italic|literal", commando.String, "-").
		AddFlag("partial", "shape of ∂: upright|italic|literal", commando.String, "-").
		AddFlag("nabla", "shape of ∇: upright|italic|literal", commando.String, "-").
		AddFlag("describe,d", "describe every output character", commando.Bool, nil).
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runStyleCommand)

	commando.
		Register("table").
		SetDescription("Print the style transitions for an alphabet under a style policy.").
		SetShortDescription("print transitions").
		AddArgument("alphabet", "alphabet: num|Greek|greek|Latin|latin|dotless|partial|Nabla", "").
		AddArgument("styles...", "current styles to print rows for (default: all)", "").
		AddFlag("policy,p", "YAML file holding a style policy", commando.String, "-").
		AddFlag("math-style,m", "baseline convention: tex|iso|french|upright|literal", commando.String, "-").
		AddFlag("normal", "normal style (convention or Greek=..,greek=..,Latin=..,latin=..)", commando.String, "-").
		AddFlag("bold", "bold style (convention or Greek=..,greek=..,Latin=..,latin=..)", commando.String, "-").
		AddFlag("sans", "sans-serif shape: upright|italic|literal", commando.String, "-").
		AddFlag("partial", "shape of ∂: upright|italic|literal", commando.String, "-").
		AddFlag("nabla", "shape of ∇: upright|italic|literal", commando.String, "-").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runTableCommand)

	commando.
		Register("describe").
		SetDescription("Print registry information for characters.").
		SetShortDescription("describe characters").
		AddArgument("text", "characters to describe, quoted if they contain spaces", "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+03B1)", commando.String, "-").
		SetAction(runDescribeCommand)

	commando.
		Register("verify").
		SetDescription("Check the character registry against Unicode compatibility decompositions.").
		SetShortDescription("verify registry").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runVerifyCommand)

	commando.Parse(nil)
}

// --- Tracing ---------------------------------------------------------------

var traceKeys = []string{"mathstyle", "mathstyle.policy", "mathstyle.subst", "mathstyle.registry"}

func setupTracing(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		switch level {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			fatalf("invalid trace level: %s", level)
		}
	}
}

// --- Policy ----------------------------------------------------------------

var policyFlags = map[string]string{
	"math-style": policy.KeyMathStyle,
	"normal":     policy.KeyNormalStyle,
	"bold":       policy.KeyBoldStyle,
	"sans":       policy.KeySansStyle,
	"partial":    policy.KeyPartial,
	"nabla":      policy.KeyNabla,
}

// policyFromFlags loads the policy file, if any, and applies the policy
// flags on top of it.
func policyFromFlags(flags map[string]commando.FlagValue) policy.Policy {
	p := policy.Default()
	if path := mustFlagString(flags["policy"], "policy"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fatalf("cannot open policy file: %v", err)
		}
		defer f.Close()
		if p, err = policy.LoadYAML(f); err != nil {
			fatalf("cannot load policy file %s: %v", path, err)
		}
	}
	settings := make(map[string]string)
	for name, key := range policyFlags {
		if v := mustFlagString(flags[name], name); v != "" {
			settings[key] = v
		}
	}
	p, err := p.Apply(settings)
	if err != nil {
		fatalf("%v", err)
	}
	return p
}

func mustStyler(p policy.Policy) *mathstyle.Styler {
	st, err := mathstyle.New(p)
	if err != nil {
		fatalf("%v", err)
	}
	return st
}

// --- Helpers ---------------------------------------------------------------

// parseTextInput returns the text argument verbatim, or the characters given
// by --codepoints. Either one is required.
func parseTextInput(textArg commando.ArgValue, cpFlag commando.FlagValue) string {
	cp := mustFlagString(cpFlag, "codepoints")
	if cp != "" {
		runes, err := inspect.ParseCodepoints(cp)
		if err != nil {
			fatalf("%v", err)
		}
		return string(runes)
	}
	if textArg.Value == "" || textArg.Value == "-" {
		fatalf("no text given, use an argument or --codepoints")
	}
	return textArg.Value
}

// mustFlagString returns the value of a string flag, with "-" meaning
// unset.
func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ms-tools: "+format+"\n", args...)
	os.Exit(1)
}
