/*
Command grafigo renders an ASCII-art diagram into SVG: it reads a grid of
text, discovers lines/boxes/arrows in it against a ruleset.Table, scans the
remaining cells for text labels, and writes the result as a single SVG
document.

Flag handling and trace-level wiring use flag.String/flag.Bool + flag.Parse,
a gtrace/tracing setup performed once in main, and pterm for colored
status output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"io"
	"os"

	"github.com/npillmayer/grafigo/diag"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'grafigo.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.cmd")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	rulesPath := flag.String("rules", "", "path to a rule file in the textual DSL (defaults to a built-in table)")
	tableName := flag.String("table", "demo", "built-in table to fall back on when -rules is not given [demo|original]")
	outPath := flag.String("o", "", "output path for the rendered SVG (defaults to stdout)")
	debug := flag.Bool("debug", false, "print a tree of discovered paths and text spans to stderr before emitting SVG")
	interactive := flag.Bool("interactive", false, "read diagrams from stdin, one per blank-line-terminated block, instead of a single input file")
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	tbl, err := loadTable(*rulesPath, *tableName)
	if err != nil {
		reportAndExit(err)
	}

	if *interactive {
		runInteractive(tbl, *debug)
		return
	}

	var in io.Reader = os.Stdin
	args := flag.Args()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			reportAndExit(diag.Wrap(diag.InputIO, err))
		}
		defer f.Close()
		in = f
	}

	source, err := io.ReadAll(in)
	if err != nil {
		reportAndExit(diag.Wrap(diag.InputIO, err))
	}

	svg, sink, err := renderDiagram(string(source), tbl, *debug)
	if err != nil {
		reportAndExit(err)
	}
	if !sink.Empty() {
		for _, w := range sink.Warnings {
			pterm.Warning.Println(w.String())
		}
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			reportAndExit(diag.Wrap(diag.InputIO, err))
		}
		defer f.Close()
		out = f
	}
	if _, err := out.WriteString(svg); err != nil {
		reportAndExit(diag.Wrap(diag.InputIO, err))
	}
}

// initDisplay sets up pterm's colored message prefixes.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// reportAndExit prints err through pterm and exits 1. Every error reaching
// main is one of InputIO, RuleParse, or AssertionViolation — the only kinds
// loadTable/renderDiagram ever return as a hard failure rather than a
// diag.Sink warning.
func reportAndExit(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}
