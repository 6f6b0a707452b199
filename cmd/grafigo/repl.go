package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/grafigo/ruleset"
	"github.com/pterm/pterm"
)

// runInteractive reads one diagram per blank-line-terminated block from
// stdin and renders each to stdout in turn: a line is appended to the
// pending block, a blank line (or EOF) flushes the block through the same
// pipeline a single file argument would take.
func runInteractive(tbl *ruleset.Table, debug bool) {
	repl, err := readline.New("grafigo> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	var pending []string
	flush := func() {
		if len(pending) == 0 {
			return
		}
		source := strings.Join(pending, "\n")
		pending = pending[:0]
		svg, sink, err := renderDiagram(source, tbl, debug)
		if err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		for _, w := range sink.Warnings {
			pterm.Warning.Println(w.String())
		}
		pterm.Println(svg)
	}

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			flush()
			break
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		pending = append(pending, line)
	}
	pterm.Info.Println("Good bye!")
}
