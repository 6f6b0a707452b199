package dsl

import (
	"fmt"
	"strings"

	"github.com/npillmayer/grafigo/compass"
	"github.com/npillmayer/grafigo/diag"
	"github.com/npillmayer/grafigo/ruleset"
)

// Parse reads a complete rule file and returns the Table it describes.
// Blank lines and lines whose first non-blank rune is '#' are skipped.
// Every other line must hold exactly one rule (a second rule
// on the same line is a RuleParse error, not a panic — the textual DSL is
// deliberately one-rule-per-line, unlike the in-memory builder API).
func Parse(source string) (*ruleset.Table, error) {
	tbl := ruleset.NewTable()
	for i, line := range strings.Split(source, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entry, err := parseLine(trimmed, lineNo)
		if err != nil {
			return nil, err
		}
		if err := tbl.Append(entry); err != nil {
			return nil, diag.AtLine(diag.RuleParse, lineNo, err.Error())
		}
	}
	return tbl.Freeze(), nil
}

// parser walks a single line's token stream with one token of lookahead.
type parser struct {
	toks   []tok
	pos    int
	lineNo int
}

func parseLine(line string, lineNo int) (ruleset.Entry, error) {
	toks, err := tokenize(line)
	if err != nil {
		return ruleset.Entry{}, diag.AtLine(diag.RuleParse, lineNo, err.Error())
	}
	if len(toks) == 0 {
		return ruleset.Entry{}, diag.AtLine(diag.RuleParse, lineNo, "empty rule line")
	}
	p := &parser{toks: toks, lineNo: lineNo}
	e, err := p.rule()
	if err != nil {
		return ruleset.Entry{}, err
	}
	if !p.atEnd() {
		return ruleset.Entry{}, p.errorf("unexpected trailing input %q at column %d (did you forget a ';', or is there a second rule on this line?)", p.remainder(), p.toks[p.pos].col)
	}
	e.Provenance = fmt.Sprintf("line %d", lineNo)
	return e, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() (tok, bool) {
	if p.atEnd() {
		return tok{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (tok, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) remainder() string {
	var sb strings.Builder
	for i := p.pos; i < len(p.toks); i++ {
		if i > p.pos {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.toks[i].lexeme)
	}
	return sb.String()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return diag.AtLine(diag.RuleParse, p.lineNo, fmt.Sprintf(format, args...))
}

// expectIdent consumes an identifier token whose lexeme equals want.
func (p *parser) expectIdent(want string) error {
	t, ok := p.next()
	if !ok {
		return p.errorf("expected %q, found end of line", want)
	}
	if t.typ != TokIdent || !strings.EqualFold(t.lexeme, want) {
		return p.errorf("expected %q, found %q", want, t.lexeme)
	}
	return nil
}

func (p *parser) expectType(typ TokType) (tok, error) {
	t, ok := p.next()
	if !ok {
		return tok{}, p.errorf("expected a %s, found end of line", tokenName[typ])
	}
	if t.typ != typ {
		return tok{}, p.errorf("expected a %s, found %q", tokenName[typ], t.lexeme)
	}
	return t, nil
}

// rule ::= ( 'loop' | 'step' ) stepShape
//
//	| 'start' startShape
//	| 'end'   endShape
func (p *parser) rule() (ruleset.Entry, error) {
	head, ok := p.next()
	if !ok || head.typ != TokIdent {
		return ruleset.Entry{}, p.errorf("expected a rule keyword (loop/step/start/end)")
	}
	switch strings.ToLower(head.lexeme) {
	case "step":
		return p.stepShape(false)
	case "loop":
		return p.stepShape(true)
	case "start":
		return p.startShape()
	case "end":
		return p.endShape()
	default:
		return ruleset.Entry{}, p.errorf("unknown rule keyword %q", head.lexeme)
	}
}

// stepShape ::= charset dirset charset dirset charset draw attrs? ';'
//
// The five positions read in traversal order: incoming neighbor chars,
// incoming directions, current char, outgoing directions, outgoing
// neighbor chars.
func (p *parser) stepShape(isLoop bool) (ruleset.Entry, error) {
	inCS, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	inDS, err := p.dirset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	cur, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	outDS, err := p.dirset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	outCS, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	template, attrs, err := p.drawClause()
	if err != nil {
		return ruleset.Entry{}, err
	}
	if isLoop {
		return ruleset.Loop(inCS, inDS, cur, outDS, outCS, template, attrs...), nil
	}
	return ruleset.Step(inCS, inDS, cur, outDS, outCS, template, attrs...), nil
}

// startShape ::= charset dirset charset draw attrs? ';'
func (p *parser) startShape() (ruleset.Entry, error) {
	cur, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	outDS, err := p.dirset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	outCS, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	template, attrs, err := p.drawClause()
	if err != nil {
		return ruleset.Entry{}, err
	}
	return ruleset.StartEntry(cur, outDS, outCS, template, attrs...), nil
}

// endShape ::= charset dirset charset draw attrs? ';'
func (p *parser) endShape() (ruleset.Entry, error) {
	inCS, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	inDS, err := p.dirset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	cur, err := p.charset()
	if err != nil {
		return ruleset.Entry{}, err
	}
	template, attrs, err := p.drawClause()
	if err != nil {
		return ruleset.Entry{}, err
	}
	return ruleset.EndEntry(inCS, inDS, cur, template, attrs...), nil
}

// dirset ::= 'ANY' | '(' dir (',' dir)* ','? ')'
func (p *parser) dirset() (ruleset.DirSet, error) {
	t, ok := p.peek()
	if !ok {
		return 0, p.errorf("expected a direction set, found end of line")
	}
	if t.typ == TokIdent && strings.EqualFold(t.lexeme, "ANY") {
		p.pos++
		return ruleset.AllDirs, nil
	}
	if _, err := p.expectType(TokLParen); err != nil {
		return 0, err
	}
	var dirs []compass.Direction
	for {
		t, err := p.expectType(TokIdent)
		if err != nil {
			return 0, err
		}
		d, ok := directionNamed(t.lexeme)
		if !ok {
			return 0, p.errorf("not a direction name: %q", t.lexeme)
		}
		dirs = append(dirs, d)
		nt, ok := p.peek()
		if ok && nt.typ == TokComma {
			p.pos++
			// A trailing comma before the closing paren is allowed.
			if nt2, ok := p.peek(); ok && nt2.typ == TokRParen {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expectType(TokRParen); err != nil {
		return 0, err
	}
	return ruleset.Dirs(dirs...), nil
}

func directionNamed(name string) (compass.Direction, bool) {
	switch strings.ToUpper(name) {
	case "N":
		return compass.N, true
	case "NE":
		return compass.NE, true
	case "E":
		return compass.E, true
	case "SE":
		return compass.SE, true
	case "S":
		return compass.S, true
	case "SW":
		return compass.SW, true
	case "W":
		return compass.W, true
	case "NW":
		return compass.NW, true
	default:
		return 0, false
	}
}

// charset ::= 'ANY' | CHAR | STRING
func (p *parser) charset() (ruleset.CharSet, error) {
	t, ok := p.next()
	if !ok {
		return ruleset.CharSet{}, p.errorf("expected a character set, found end of line")
	}
	switch t.typ {
	case TokIdent:
		if strings.EqualFold(t.lexeme, "ANY") {
			return ruleset.Any(), nil
		}
		return ruleset.CharSet{}, p.errorf("expected ANY, a char literal, or a string, found %q", t.lexeme)
	case TokChar:
		return ruleset.Char(unquoteChar(t.lexeme)), nil
	case TokString:
		return ruleset.Chars(unquoteString(t.lexeme)), nil
	default:
		return ruleset.CharSet{}, p.errorf("expected a character set, found %q", t.lexeme)
	}
}

// drawClause ::= 'draw' STRING ( 'attrs' '[' attr (',' attr)* ','? ']' )? ';'
func (p *parser) drawClause() (string, []ruleset.Attr, error) {
	if err := p.expectIdent("draw"); err != nil {
		return "", nil, err
	}
	tmplTok, err := p.expectType(TokString)
	if err != nil {
		return "", nil, err
	}
	template := unquoteString(tmplTok.lexeme)

	var attrs []ruleset.Attr
	if t, ok := p.peek(); ok && t.typ == TokIdent && strings.EqualFold(t.lexeme, "attrs") {
		p.pos++
		if _, err := p.expectType(TokLBracket); err != nil {
			return "", nil, err
		}
		for {
			a, err := p.attr()
			if err != nil {
				return "", nil, err
			}
			attrs = append(attrs, a)
			t, ok := p.peek()
			if ok && t.typ == TokComma {
				p.pos++
				// A trailing comma before the closing bracket is allowed.
				if t2, ok := p.peek(); ok && t2.typ == TokRBracket {
					break
				}
				continue
			}
			break
		}
		if _, err := p.expectType(TokRBracket); err != nil {
			return "", nil, err
		}
	}
	if _, err := p.expectType(TokSemicolon); err != nil {
		return "", nil, err
	}
	return template, attrs, nil
}

// attr ::= '(' STRING ',' STRING ')'
func (p *parser) attr() (ruleset.Attr, error) {
	if _, err := p.expectType(TokLParen); err != nil {
		return ruleset.Attr{}, err
	}
	name, err := p.expectType(TokString)
	if err != nil {
		return ruleset.Attr{}, err
	}
	if _, err := p.expectType(TokComma); err != nil {
		return ruleset.Attr{}, err
	}
	value, err := p.expectType(TokString)
	if err != nil {
		return ruleset.Attr{}, err
	}
	if _, err := p.expectType(TokRParen); err != nil {
		return ruleset.Attr{}, err
	}
	return ruleset.Attr{Name: unquoteString(name.lexeme), Value: unquoteString(value.lexeme)}, nil
}

func unquoteChar(lexeme string) rune {
	inner := lexeme[1 : len(lexeme)-1]
	if strings.HasPrefix(inner, `\`) && len(inner) == 2 {
		return rune(inner[1])
	}
	return []rune(inner)[0]
}

func unquoteString(lexeme string) string {
	return lexeme[1 : len(lexeme)-1]
}
