package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bdftab.cli'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.bdftab":        "Error",
		"trace.bdftab.bdf":    "Error",
		"trace.bdftab.bitmap": "Error",
		"trace.bdftab.cli":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "BDF font to load")
	encoding := flag.String("encoding", "auto", "Encoding of the font file [auto|utf8|latin1]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("bdfcli: look at the glyphs of a BDF font as the table generator places them")
	//
	// set up REPL
	repl, err := readline.New("bdf > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	//
	// load font to inspect
	enc, err := bdftab.ParseEncoding(*encoding)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	if err := intp.loadFont(*fontname, enc); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Type 'help' for commands, quit with <ctrl>D")
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
	intp.REPL()
}

// initDisplay sets the pterm prefixes of the inspector.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " bdf ",
		Style: pterm.NewStyle(pterm.BgBlue, pterm.FgWhite),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " font",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " bdf!",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
	}
}

// Intp is our interpreter object
type Intp struct {
	src  *bdftab.Source
	hdr  *bdf.FontHeader
	repl *readline.Instance
	last string // key of the last glyph shown
}

func (intp *Intp) loadFont(path string, enc bdftab.Encoding) error {
	if path == "" {
		return fmt.Errorf("no font given, use -font <file.bdf>")
	}
	src, err := bdftab.Open(path, enc)
	if err != nil {
		return err
	}
	hdr, err := src.Header()
	if err != nil {
		return err
	}
	intp.src, intp.hdr = src, hdr
	pterm.Info.Printf("Font %s loaded, %d glyphs\n", src.Name, hdr.GlyphCount)
	for _, w := range hdr.Warnings {
		pterm.Warning.Println(w.String())
	}
	return nil
}

func (intp *Intp) prompt() string {
	if intp.last == "" {
		return "bdf > "
	}
	return fmt.Sprintf("bdf [%s] > ", intp.last)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		intp.repl.SetPrompt(intp.prompt())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		quit, err := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a parsed command line.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	INFO
	LIST
	GLYPH
	OUTLINE
)

var opMap = map[string]int{
	"quit":    QUIT,
	"exit":    QUIT,
	"help":    HELP,
	"info":    INFO,
	"list":    LIST,
	"glyph":   GLYPH,
	"outline": OUTLINE,
}

// parseCommand splits a line into command and argument. Unknown commands
// map to HELP.
func parseCommand(line string) Op {
	fields := strings.Fields(line)
	code, ok := opMap[strings.ToLower(fields[0])]
	if !ok {
		code = HELP
	}
	op := Op{code: code}
	if len(fields) > 1 {
		op.arg = strings.Join(fields[1:], " ")
	}
	tracer().Debugf("parsed command: %v", fields)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:    quitOp,
	HELP:    helpOp,
	INFO:    infoOp,
	LIST:    listOp,
	GLYPH:   glyphOp,
	OUTLINE: outlineOp,
}

func (intp *Intp) execute(op Op) (bool, error) {
	f, ok := commandFn[op.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", op.code)
	}
	return f(intp, &op)
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	return true, nil
}
