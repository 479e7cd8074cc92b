package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathstyle"
	"github.com/npillmayer/mathstyle/policy"
	"github.com/npillmayer/mathstyle/registry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mathstyle'
func tracer() tracing.Trace {
	return tracing.Select("mathstyle")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mathstyle":          "Info",
		"trace.mathstyle.policy":   "Info",
		"trace.mathstyle.subst":    "Error",
		"trace.mathstyle.registry": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	policyFile := flag.String("policy", "", "YAML file holding a style policy")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)          // will set the correct level later
	pterm.Info.Println("Welcome to the math style CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ms > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, reg: registry.Default()}
	//
	// load policy to use
	if err := intp.loadPolicy(*policyFile); err != nil { // file name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	policy policy.Policy
	styler *mathstyle.Styler
	reg    *registry.Registry
	repl   *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.styler == nil {
		return "()"
	}
	return fmt.Sprintf("( %v )", intp.policy)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its argument, which is the remainder of the
// input line.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	POLICY
	SET
	STYLE
	AS
	TABLE
	DESCRIBE
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"policy":   POLICY,
	"set":      SET,
	"style":    STYLE,
	"as":       AS,
	"table":    TABLE,
	"describe": DESCRIBE,
}

func parseCommand(line string) *Op {
	word, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		tracer().Infof("unknown command %q", word)
		return &Op{code: HELP}
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s %q", word, op.arg)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	POLICY:   policyOp,
	SET:      setOp,
	STYLE:    styleOp,
	AS:       asOp,
	TABLE:    tableOp,
	DESCRIBE: describeOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	if err, stop = f(intp, op); err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Policy Loading ---------------------------------------------------

func (intp *Intp) loadPolicy(path string) error {
	p := policy.Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if p, err = policy.LoadYAML(f); err != nil {
			return err
		}
		tracer().Infof("loaded style policy from %s", path)
	}
	return intp.usePolicy(p)
}

func (intp *Intp) usePolicy(p policy.Policy) error {
	if intp.styler == nil {
		st, err := mathstyle.NewWithRegistry(p, intp.reg)
		if err != nil {
			return err
		}
		intp.styler = st
	} else if err := intp.styler.SetPolicy(p); err != nil {
		return err
	}
	intp.policy = p
	return nil
}

var ErrNoArg = errors.New("command needs an argument")
