// File: pattern.go
// Title: Message Pattern Compiler
// Description: Compiles MessageFormat-style patterns into an immutable Pattern
//              that can be rendered many times. Supports quoted literals, plain
//              arguments, number, date, time and choice arguments. Compiled
//              patterns are bound to a locale and are safe for concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mdwerror "github.com/msto63/verifier/core/error"
)

// argStyle selects how an argument is rendered
type argStyle int

const (
	styleDefault argStyle = iota
	styleNumber
	styleDate
	styleTime
	styleChoice
)

// segment is either literal text or an argument reference
type segment struct {
	literal string
	arg     *argument
}

type argument struct {
	index  int
	style  argStyle
	number numberStyle
	layout string
	choice []choiceItem
}

type choiceItem struct {
	limit   float64
	pattern *Pattern
}

// Pattern is a compiled message pattern
type Pattern struct {
	source   string
	tag      language.Tag
	printer  *message.Printer
	segments []segment
	maxArg   int
}

// Compile parses pattern for the given locale
func Compile(pattern string, tag language.Tag) (*Pattern, error) {
	p := &parser{src: []rune(pattern), tag: tag, printer: message.NewPrinter(tag)}
	compiled, err := p.parse(false)
	if err != nil {
		return nil, err
	}
	compiled.source = pattern
	return compiled, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pattern string, tag language.Tag) *Pattern {
	p, err := Compile(pattern, tag)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the pattern text
func (p *Pattern) Source() string {
	return p.source
}

// Locale returns the locale the pattern was compiled for
func (p *Pattern) Locale() language.Tag {
	return p.tag
}

// ArgCount returns the number of arguments the pattern refers to
func (p *Pattern) ArgCount() int {
	return p.maxArg + 1
}

// Format renders the pattern. A nil registry uses the default registry.
// Arguments that are not supplied render as {n}.
func (p *Pattern) Format(r *Registry, args ...any) string {
	if r == nil {
		r = Default()
	}
	s := &State{Tag: p.tag, Printer: p.printer, registry: r}
	var b strings.Builder
	p.render(&b, s, args)
	return b.String()
}

func (p *Pattern) render(b *strings.Builder, s *State, args []any) {
	for _, seg := range p.segments {
		if seg.arg == nil {
			b.WriteString(seg.literal)
			continue
		}
		a := seg.arg
		if a.index >= len(args) {
			b.WriteByte('{')
			b.WriteString(strconv.Itoa(a.index))
			b.WriteByte('}')
			continue
		}
		v := args[a.index]
		switch a.style {
		case styleNumber:
			b.WriteString(a.number.format(s, v))
		case styleDate, styleTime:
			b.WriteString(formatTime(s, v, a.layout))
		case styleChoice:
			if f, ok := toFloat(v); ok {
				a.selectChoice(f).render(b, s, args)
			} else {
				b.WriteString(s.Format(v))
			}
		default:
			b.WriteString(s.Format(v))
		}
	}
}

// selectChoice returns the last item whose limit is <= f, or the first item
func (a *argument) selectChoice(f float64) *Pattern {
	selected := a.choice[0].pattern
	for _, item := range a.choice {
		if f >= item.limit {
			selected = item.pattern
		} else {
			break
		}
	}
	return selected
}

type parser struct {
	src     []rune
	pos     int
	tag     language.Tag
	printer *message.Printer
}

func (p *parser) fail(msg string, pos int) error {
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidPattern).
		WithOperation("format.Compile").
		WithDetail("pattern", string(p.src)).
		WithDetail("position", pos)
}

// parse reads segments until the end of input. In a choice sub-pattern the
// parser stops at a top level '|' or '}'.
func (p *parser) parse(nested bool) (*Pattern, error) {
	out := &Pattern{tag: p.tag, printer: p.printer, maxArg: -1}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			out.segments = append(out.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\'':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
				lit.WriteRune('\'')
				p.pos += 2
				continue
			}
			start := p.pos
			p.pos++
			closed := false
			for p.pos < len(p.src) {
				if p.src[p.pos] == '\'' {
					if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
						lit.WriteRune('\'')
						p.pos += 2
						continue
					}
					p.pos++
					closed = true
					break
				}
				lit.WriteRune(p.src[p.pos])
				p.pos++
			}
			if !closed {
				return nil, p.fail("unterminated quoted literal", start)
			}
		case c == '{':
			flush()
			a, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			out.segments = append(out.segments, segment{arg: a})
			if a.index > out.maxArg {
				out.maxArg = a.index
			}
			for _, item := range a.choice {
				if item.pattern.maxArg > out.maxArg {
					out.maxArg = item.pattern.maxArg
				}
			}
		case c == '}':
			if nested {
				flush()
				return out, nil
			}
			return nil, p.fail("unmatched closing brace", p.pos)
		case c == '|' && nested:
			flush()
			return out, nil
		default:
			lit.WriteRune(c)
			p.pos++
		}
	}

	if nested {
		return nil, p.fail("unterminated choice", p.pos)
	}
	flush()
	return out, nil
}

// parseArgument parses {index[,type[,style]]} starting at the opening brace
func (p *parser) parseArgument() (*argument, error) {
	open := p.pos
	p.pos++

	index, err := p.readIndex()
	if err != nil {
		return nil, err
	}
	a := &argument{index: index}

	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return a, nil
	}
	if p.peek() != ',' {
		return nil, p.fail("expected ',' or '}' after argument index", p.pos)
	}
	p.pos++

	kind := strings.ToLower(p.readWord())
	p.skipSpace()

	var style string
	switch p.peek() {
	case '}':
		p.pos++
	case ',':
		p.pos++
		if kind == "choice" {
			items, err := p.parseChoice()
			if err != nil {
				return nil, err
			}
			a.style = styleChoice
			a.choice = items
			return a, nil
		}
		style, err = p.readStyle()
		if err != nil {
			return nil, err
		}
	default:
		return nil, p.fail("malformed argument", open)
	}

	switch kind {
	case "number":
		ns, err := parseNumberStyle(style)
		if err != nil {
			return nil, p.fail(err.Error(), open)
		}
		a.style = styleNumber
		a.number = ns
	case "date":
		a.style = styleDate
		a.layout = dateLayout(style)
	case "time":
		a.style = styleTime
		a.layout = timeLayout(style)
	case "choice":
		return nil, p.fail("choice argument requires limits", open)
	default:
		return nil, p.fail("unknown argument type "+strconv.Quote(kind), open)
	}
	return a, nil
}

func (p *parser) readIndex() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.fail("argument index must be a non-negative integer", start)
	}
	n, err := strconv.Atoi(string(p.src[start:p.pos]))
	if err != nil {
		return 0, p.fail("argument index out of range", start)
	}
	p.skipSpace()
	return n, nil
}

func (p *parser) readWord() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' || c == '}' || c == ' ' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// readStyle reads up to the closing brace, honouring quotes
func (p *parser) readStyle() (string, error) {
	start := p.pos
	var b strings.Builder
	inQuote := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\'':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
				b.WriteRune('\'')
				p.pos += 2
				continue
			}
			inQuote = !inQuote
		case c == '}' && !inQuote:
			p.pos++
			return strings.TrimSpace(b.String()), nil
		default:
			b.WriteRune(c)
		}
		p.pos++
	}
	return "", p.fail("unterminated argument", start)
}

// parseChoice parses limit#text|limit<text|... up to the closing brace
func (p *parser) parseChoice() ([]choiceItem, error) {
	var items []choiceItem
	for {
		p.skipSpace()
		start := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune("#<≤", p.src[p.pos]) {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return nil, p.fail("choice limit without separator", start)
		}
		limit, err := parseLimit(strings.TrimSpace(string(p.src[start:p.pos])))
		if err != nil {
			return nil, p.fail("invalid choice limit", start)
		}
		if p.src[p.pos] == '<' {
			limit = math.Nextafter(limit, math.Inf(1))
		}
		p.pos++

		if len(items) > 0 && limit < items[len(items)-1].limit {
			return nil, p.fail("choice limits must be ascending", start)
		}

		sub, err := p.parse(true)
		if err != nil {
			return nil, err
		}
		items = append(items, choiceItem{limit: limit, pattern: sub})

		// parse(true) stopped on '|' or '}'
		c := p.src[p.pos]
		p.pos++
		if c == '}' {
			return items, nil
		}
	}
}

func parseLimit(s string) (float64, error) {
	switch s {
	case "∞", "inf", "+inf":
		return math.Inf(1), nil
	case "-∞", "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

func (p *parser) peek() rune {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// Format compiles pattern for tag and renders it with the default registry.
// An invalid pattern is returned unchanged.
func Format(tag language.Tag, pattern string, args ...any) string {
	p, err := Compile(pattern, tag)
	if err != nil {
		return pattern
	}
	return p.Format(nil, args...)
}

var dateLayouts = map[string]string{
	"short":  "1/2/06",
	"medium": "Jan 2, 2006",
	"long":   "January 2, 2006",
	"full":   "Monday, January 2, 2006",
}

var timeLayouts = map[string]string{
	"short":  "3:04 PM",
	"medium": "3:04:05 PM",
	"long":   "3:04:05 PM MST",
	"full":   "3:04:05 PM MST",
}

func dateLayout(style string) string {
	if style == "" {
		return dateLayouts["medium"]
	}
	if l, ok := dateLayouts[strings.ToLower(style)]; ok {
		return l
	}
	return style
}

func timeLayout(style string) string {
	if style == "" {
		return timeLayouts["medium"]
	}
	if l, ok := timeLayouts[strings.ToLower(style)]; ok {
		return l
	}
	return style
}

func formatTime(s *State, v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout)
	case *time.Time:
		if t != nil {
			return t.Format(layout)
		}
	}
	return s.Format(v)
}
