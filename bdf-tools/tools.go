package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// traceKeys are the tracers of all packages involved in a conversion.
var traceKeys = []string{"bdftab", "bdftab.bdf", "bdftab.bitmap", "bdftab.tabgen", "bdftab.preview"}

func main() {
	commando.
		SetExecutableName("bdf-tools").
		SetVersion("v0.1.0").
		SetDescription("Convert BDF bitmap fonts to packed bitmap tables for C or Go programs.")

	commando.
		Register("convert").
		SetDescription("Convert a BDF font to C or Go source. Output is written only if the conversion succeeds.").
		SetShortDescription("convert a font").
		AddFlag("input,i", "BDF font file ('-' for stdin)", commando.String, "-").
		AddFlag("output,o", "source file to write ('-' for stdout)", commando.String, "-").
		AddFlag("preview,p", "write a preview sheet (.png or .ppm)", commando.String, "-").
		AddFlag("name,n", "variable name of the font", commando.String, "font").
		AddFlag("outline,O", "create an outlined font", commando.Bool, nil).
		AddFlag("format,f", "output format: c|go", commando.String, "c").
		AddFlag("package", "package clause for Go output", commando.String, "font").
		AddFlag("encoding,e", "encoding of the font file: auto|utf8|latin1", commando.String, "auto").
		AddFlag("latin1", "font file is ISO 8859-1 (same as --encoding latin1)", commando.Bool, nil).
		AddFlag("trace,t", "trace level: Debug|Info|Error", commando.String, "Error").
		AddFlag("verbose,V", "print warnings and a summary", commando.Bool, nil).
		SetAction(runConvertCommand)

	commando.
		Register("header").
		SetDescription("Write the C header file declaring struct bitmap_font and the bit-pattern macros.").
		SetShortDescription("write C header").
		AddFlag("output,o", "header file to write ('-' for stdout)", commando.String, "-").
		SetAction(runHeaderCommand)

	commando.
		Register("info").
		SetDescription("Print the font header and a summary of every glyph.").
		SetShortDescription("font information").
		AddArgument("font", "BDF font file path", "").
		AddFlag("glyphs,g", "list all glyphs", commando.Bool, nil).
		AddFlag("encoding,e", "encoding of the font file: auto|utf8|latin1", commando.String, "auto").
		AddFlag("trace,t", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

// setupTracing routes all tracers to the Go logger, at the given level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "bdf-tools: "+format+"\n", args...)
	os.Exit(1)
}
