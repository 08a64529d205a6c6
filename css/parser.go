package css

import "strings"

// ParseStylesheet parses stylesheet text into a rule list. The grammar
// is deliberately small: qualified rules with comma-separated simple
// selectors and keyword-valued declarations. Rules that do not fit the
// grammar are skipped; parsing never fails.
func ParseStylesheet(input string) Stylesheet {
	p := &parser{input: input}
	var rules []Rule
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		rule, ok := p.parseRule()
		if !ok {
			// Resynchronize after the offending block.
			p.skipPast('}')
			continue
		}
		rules = append(rules, rule)
	}
	return Stylesheet{Rules: rules}
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

// skipSpace consumes whitespace and /* */ comments.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch {
		case isSpace(p.peek()):
			p.pos++
		case strings.HasPrefix(p.input[p.pos:], "/*"):
			end := strings.Index(p.input[p.pos+2:], "*/")
			if end < 0 {
				p.pos = len(p.input)
				return
			}
			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

// skipPast consumes input up to and including the next occurrence of c.
func (p *parser) skipPast(c byte) {
	for !p.eof() {
		if p.input[p.pos] == c {
			p.pos++
			return
		}
		p.pos++
	}
}

func (p *parser) accept(c byte) bool {
	if !p.eof() && p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// ident consumes an identifier-like token (letters, digits, '-', '_').
func (p *parser) ident() (string, bool) {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}

func (p *parser) parseRule() (Rule, bool) {
	selectors, ok := p.parseSelectors()
	if !ok {
		return Rule{}, false
	}
	if !p.accept('{') {
		return Rule{}, false
	}
	declarations := p.parseDeclarations()
	p.skipSpace()
	if !p.accept('}') {
		return Rule{}, false
	}
	return Rule{Selectors: selectors, Declarations: declarations}, true
}

func (p *parser) parseSelectors() ([]Selector, bool) {
	var selectors []Selector
	for {
		p.skipSpace()
		sel, ok := p.parseSelector()
		if !ok {
			return nil, false
		}
		selectors = append(selectors, sel)
		p.skipSpace()
		if !p.accept(',') {
			return selectors, true
		}
	}
}

func (p *parser) parseSelector() (Selector, bool) {
	if p.eof() {
		return nil, false
	}
	if p.accept('*') {
		return UniversalSelector{}, true
	}
	if p.accept('.') {
		class, ok := p.ident()
		if !ok {
			return nil, false
		}
		return ClassSelector{ClassName: class}, true
	}
	tag, ok := p.ident()
	if !ok {
		return nil, false
	}
	p.skipSpace()
	if !p.accept('[') {
		return TypeSelector{TagName: tag}, true
	}
	p.skipSpace()
	attr, ok := p.ident()
	if !ok {
		return nil, false
	}
	p.skipSpace()
	var op AttrOp
	switch {
	case p.accept('='):
		op = AttrEq
	case p.accept('~'):
		if !p.accept('=') {
			return nil, false
		}
		op = AttrContain
	default:
		return nil, false
	}
	p.skipSpace()
	value, ok := p.ident()
	if !ok {
		return nil, false
	}
	p.skipSpace()
	if !p.accept(']') {
		return nil, false
	}
	return AttributeSelector{TagName: tag, Attribute: attr, Op: op, Value: value}, true
}

func (p *parser) parseDeclarations() []Declaration {
	var declarations []Declaration
	for {
		p.skipSpace()
		if p.eof() || p.peek() == '}' {
			return declarations
		}
		name, ok := p.ident()
		if !ok {
			return declarations
		}
		p.skipSpace()
		if !p.accept(':') {
			return declarations
		}
		p.skipSpace()
		keyword, ok := p.ident()
		if !ok {
			return declarations
		}
		declarations = append(declarations, Declaration{Name: name, Value: Keyword(keyword)})
		p.skipSpace()
		if !p.accept(';') {
			return declarations
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}
