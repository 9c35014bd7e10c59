package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/preview"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/bdftab/tabgen/cformat"
	"github.com/npillmayer/bdftab/tabgen/goformat"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// convertConfig collects the flags of the convert command.
type convertConfig struct {
	input, output string // "-" for stdin/stdout
	preview       string // "-" or "" for none
	name          string
	pkg           string
	format        string
	encoding      bdftab.Encoding
	outline       bool
	verbose       bool
}

func runConvertCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	if err := setupTracing(mustFlagString(flags["trace"], "trace")); err != nil {
		fatalf("%v", err)
	}
	enc, err := bdftab.ParseEncoding(mustFlagString(flags["encoding"], "encoding"))
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["latin1"], "latin1") {
		enc = bdftab.Latin1
	}
	cfg := convertConfig{
		input:    mustFlagString(flags["input"], "input"),
		output:   mustFlagString(flags["output"], "output"),
		preview:  mustFlagString(flags["preview"], "preview"),
		name:     mustFlagString(flags["name"], "name"),
		pkg:      mustFlagString(flags["package"], "package"),
		format:   mustFlagString(flags["format"], "format"),
		encoding: enc,
		outline:  mustFlagBool(flags["outline"], "outline"),
		verbose:  mustFlagBool(flags["verbose"], "verbose"),
	}
	src, err := openInput(cfg.input, cfg.encoding)
	if err != nil {
		fatalf("cannot read font: %v", err)
	}
	var out bytes.Buffer
	res, err := convert(cfg, src, &out)
	if err != nil {
		fatalf("%s: %v", src.Name, err)
	}
	if err := writeOutput(cfg.output, out.Bytes()); err != nil {
		fatalf("%v", err)
	}
	if cfg.verbose {
		for _, w := range res.Warnings {
			pterm.Warning.Println(w.String())
		}
		pterm.Info.Printf("%d glyphs converted, %d shifted, %d exceeding the cell\n",
			res.Tables.Len(), res.Shifted, res.Overflow)
	}
}

// convert runs the table generator on src. The complete output is written
// to out only if the conversion succeeds.
func convert(cfg convertConfig, src *bdftab.Source, out io.Writer) (*tabgen.Result, error) {
	var f tabgen.Formatter
	switch cfg.format {
	case "c", "C", "":
		f = cformat.Formatter{}
	case "go":
		f = goformat.Formatter{Package: cfg.pkg}
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.format)
	}
	d := tabgen.NewDriver(f, tabgen.Options{
		Name:        cfg.name,
		Outline:     cfg.outline,
		PreviewPath: cfg.preview,
	})
	if cfg.preview != "" && cfg.preview != "-" {
		d.WithObserver(preview.NewSheet(preview.Options{}))
	}
	var buf bytes.Buffer
	res, err := d.Run(src.Reader(), &buf)
	if err != nil {
		return nil, err
	}
	code := buf.Bytes()
	if cfg.format == "go" {
		if code, err = goformat.Source(code); err != nil {
			return nil, err
		}
	}
	if _, err := out.Write(code); err != nil {
		return nil, err
	}
	return res, nil
}

func openInput(path string, enc bdftab.Encoding) (*bdftab.Source, error) {
	if path == "" || path == "-" {
		return bdftab.Load(os.Stdin, enc)
	}
	return bdftab.Open(path, enc)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
