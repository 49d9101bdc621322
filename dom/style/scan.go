package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ParseTerms tokenizes a declaration value, e.g. `"x" attr(title)`, into
// a list of terms. Comments and surrounding whitespace are skipped. Commas
// and slashes between terms are recorded as the following term's operator.
//
// Malformed input results in an error wrapping ErrValidation.
func ParseTerms(text string) ([]Term, error) {
	ts := termScanner{s: scanner.New(text)}
	terms, err := ts.terms(false)
	if err != nil {
		tracer().Debugf("cannot tokenize value %q: %v", text, err)
		return nil, err
	}
	return terms, nil
}

type termScanner struct {
	s *scanner.Scanner
}

func (ts *termScanner) next() *scanner.Token {
	for {
		tok := ts.s.Next()
		if tok.Type != scanner.TokenComment {
			return tok
		}
	}
}

func (ts *termScanner) terms(inFunction bool) ([]Term, error) {
	var terms []Term
	op, sign := OpSpace, ""
	for {
		tok := ts.next()
		switch tok.Type {
		case scanner.TokenEOF:
			if inFunction {
				return nil, fmt.Errorf("%w: unclosed function", ErrValidation)
			}
			if sign != "" {
				return nil, fmt.Errorf("%w: dangling sign %q", ErrValidation, sign)
			}
			return terms, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: %s at %d:%d", ErrValidation, tok.Value, tok.Line, tok.Column)
		case scanner.TokenS, scanner.TokenBOM:
			continue
		case scanner.TokenChar:
			switch tok.Value {
			case ",":
				op = OpComma
				continue
			case "/":
				op = OpSlash
				continue
			case "-", "+":
				if sign == "" {
					sign = tok.Value
					continue
				}
			case ")":
				if inFunction && sign == "" {
					return terms, nil
				}
			}
			return nil, fmt.Errorf("%w: unexpected %q at %d:%d", ErrValidation, tok.Value,
				tok.Line, tok.Column)
		}
		t, err := ts.term(tok, sign)
		if err != nil {
			return nil, err
		}
		_ = t.SetOperator(op)
		terms = append(terms, t)
		op, sign = OpSpace, ""
	}
}

func (ts *termScanner) term(tok *scanner.Token, sign string) (Mutable, error) {
	switch tok.Type {
	case scanner.TokenNumber:
		v := sign + tok.Value
		if !strings.Contains(v, ".") {
			if n, err := strconv.Atoi(v); err == nil {
				return NewInteger(n), nil
			}
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: not a number: %q", ErrValidation, v)
		}
		return NewNumber(x, ""), nil
	case scanner.TokenPercentage, scanner.TokenDimension:
		x, unit, err := splitDimension(sign + tok.Value)
		if err != nil {
			return nil, err
		}
		return NewNumber(x, unit), nil
	}
	if sign != "" {
		return nil, fmt.Errorf("%w: sign %q before non-numeric %q", ErrValidation, sign, tok.Value)
	}
	switch tok.Type {
	case scanner.TokenIdent:
		return NewIdent(tok.Value), nil
	case scanner.TokenString:
		return NewQuoted(unquote(tok.Value)), nil
	case scanner.TokenHash:
		c, err := NewColor(tok.Value)
		if err != nil {
			return nil, err
		}
		return c, nil
	case scanner.TokenURI:
		inner := strings.TrimSpace(tok.Value[len("url(") : len(tok.Value)-1])
		if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
			inner = unquote(inner)
		}
		return NewURI(inner), nil
	case scanner.TokenFunction:
		name := strings.TrimSuffix(tok.Value, "(")
		args, err := ts.terms(true)
		if err != nil {
			return nil, err
		}
		return NewFunction(name, args...), nil
	}
	return nil, fmt.Errorf("%w: unexpected %s %q at %d:%d", ErrValidation, tok.Type,
		tok.Value, tok.Line, tok.Column)
}

// unquote strips the quotes of a CSS string token and resolves escapes.
func unquote(s string) string {
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j > i {
			n, _ := strconv.ParseUint(s[i:j], 16, 32)
			b.WriteRune(rune(n))
			if j < len(s) && s[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}
		if s[i] != '\n' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
