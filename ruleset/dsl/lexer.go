/*
Package dsl implements grafigo's textual rule grammar: four
rule shapes (loop/step/start/end), char-sets, direction-sets, templates and
attribute lists, one rule per non-blank, non-comment line.

The tokenizer is built with github.com/timtadh/lexmachine (compile-once
DFA, a thin Scanner wrapper, a logging error handler). The parser on top
of the token stream is a small hand-written recursive-descent parser: the
grammar has exactly four flat productions and no ambiguity, so a grammar
toolkit would be dead weight here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dsl

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'grafigo.dsl'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.dsl")
}

// TokType categorizes the rule grammar's terminal tokens.
type TokType int

// Token categories for the rule grammar.
const (
	TokIdent  TokType = iota // bare word: keyword, direction name, or ANY
	TokChar                  // 'x'
	TokString                // "…"
	TokLParen
	TokRParen
	TokComma
	TokSemicolon
	TokLBracket
	TokRBracket
	TokEOF
)

var tokenName = map[TokType]string{
	TokIdent: "ident", TokChar: "char", TokString: "string",
	TokLParen: "(", TokRParen: ")", TokComma: ",", TokSemicolon: ";",
	TokLBracket: "[", TokRBracket: "]", TokEOF: "EOF",
}

// tok is one scanned token: its category, its lexeme as it appeared in the
// rule line, and the 1-based column it starts at (for error messages).
type tok struct {
	typ    TokType
	lexeme string
	col    int
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return tok{
			typ:    typ,
			lexeme: string(m.Bytes),
			col:    m.StartColumn,
		}, nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func buildLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`[ \t]+`), skip)
	lex.Add([]byte(`#[^\n]*`), skip)
	lex.Add([]byte(`[A-Za-z][A-Za-z0-9_]*`), makeToken(TokIdent))
	lex.Add([]byte(`'(\\.|[^'\\])'`), makeToken(TokChar))
	lex.Add([]byte(`"[^"]*"`), makeToken(TokString))
	lex.Add([]byte(`\(`), makeToken(TokLParen))
	lex.Add([]byte(`\)`), makeToken(TokRParen))
	lex.Add([]byte(`,`), makeToken(TokComma))
	lex.Add([]byte(`;`), makeToken(TokSemicolon))
	lex.Add([]byte(`\[`), makeToken(TokLBracket))
	lex.Add([]byte(`\]`), makeToken(TokRBracket))
	if err := lex.Compile(); err != nil {
		tracer().Errorf("dsl: error compiling lexer DFA: %v", err)
		return nil, err
	}
	return lex, nil
}

func sharedLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = buildLexer()
	})
	return lexer, lexerErr
}

// tokenize scans one line (no embedded newlines) into a slice of tokens, not
// including a trailing TokEOF sentinel (the parser's lookahead helper
// reports end of line instead).
func tokenize(line string) ([]tok, error) {
	lex, err := sharedLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []tok
	for {
		item, err, eof := scan.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				tracer().Errorf("dsl: unconsumed input %q", string(ui.Text))
				scan.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		if item == nil {
			continue // skipped (whitespace/comment)
		}
		toks = append(toks, item.(tok))
	}
	return toks, nil
}
