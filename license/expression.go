package license

import (
	"errors"
	"fmt"
)

// Expression grammar, left-associative with parentheses as the only
// grouping construct:
//
//	disjunction := disjunction OR conjunction | conjunction
//	conjunction := conjunction AND atom | atom
//	atom        := IDENTIFIER | "(" disjunction ")"
//
// AND/OR are recognized in upper or lower case and must be surrounded by
// whitespace; otherwise the word reads as a license identifier.

type exprTokenKind int

const (
	tokLicense exprTokenKind = iota
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

type exprToken struct {
	kind exprTokenKind
	text string
}

func isLicenseChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func isExprSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func scanExpression(s string) ([]exprToken, error) {
	var toks []exprToken
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '(':
			toks = append(toks, exprToken{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, exprToken{tokRParen, ")"})
			i++
		case isExprSpace(c):
			i++
		case isLicenseChar(c):
			start := i
			for i < len(s) && isLicenseChar(s[i]) {
				i++
			}
			word := s[start:i]
			surrounded := start > 0 && isExprSpace(s[start-1]) &&
				i < len(s) && isExprSpace(s[i])
			switch {
			case surrounded && (word == "AND" || word == "and"):
				toks = append(toks, exprToken{tokAnd, word})
			case surrounded && (word == "OR" || word == "or"):
				toks = append(toks, exprToken{tokOr, word})
			default:
				toks = append(toks, exprToken{tokLicense, word})
			}
		default:
			return nil, fmt.Errorf("illegal character %q in license expression", c)
		}
	}
	return toks, nil
}

type exprParser struct {
	cat  *Catalog
	toks []exprToken
	pos  int
}

// ParseExpression parses an SPDX license expression into a Value tree.
// Identifiers present in the catalog become catalog licenses; unknown
// identifiers become licenses whose name equals the identifier. Only
// syntactically malformed input is an error.
func ParseExpression(cat *Catalog, expr string) (Value, error) {
	toks, err := scanExpression(expr)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errors.New("empty license expression")
	}
	p := &exprParser{cat: cat, toks: toks}
	v, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected %q after license expression", p.toks[p.pos].text)
	}
	return v, nil
}

func (p *exprParser) disjunction() (Value, error) {
	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for p.accept(tokOr) {
		right, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		left = &Disjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *exprParser) conjunction() (Value, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.accept(tokAnd) {
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		left = &Conjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *exprParser) atom() (Value, error) {
	if p.pos >= len(p.toks) {
		return nil, errors.New("license expression ends before a license")
	}
	tok := p.toks[p.pos]
	switch tok.kind {
	case tokLicense:
		p.pos++
		return p.cat.FromIdentifier(tok.text), nil
	case tokLParen:
		p.pos++
		v, err := p.disjunction()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokRParen) {
			return nil, errors.New("unbalanced parenthesis in license expression")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected %q in license expression", tok.text)
	}
}

func (p *exprParser) accept(kind exprTokenKind) bool {
	if p.pos < len(p.toks) && p.toks[p.pos].kind == kind {
		p.pos++
		return true
	}
	return false
}
