package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is the separator preceding a term within a value list.
type Operator uint8

// Separators between terms. OpSpace is the default and is also used for
// the first term of a list.
const (
	OpSpace Operator = iota
	OpComma
	OpSlash
)

func (op Operator) String() string {
	switch op {
	case OpComma:
		return ", "
	case OpSlash:
		return "/"
	}
	return " "
}

// Term is a single parsed value node, e.g. an identifier, a number or a
// function call. Terms are compared by value with Equals. Clone returns a
// deep copy, sharing no mutable state with the receiver.
type Term interface {
	String() string
	Operator() Operator
	Clone() Term
	Equals(Term) bool
}

// Mutable is implemented by terms which may be modified in place.
// SetValue parses a textual value for the term's own type.
type Mutable interface {
	Term
	SetValue(string) error
	SetOperator(Operator) error
}

// --- Ident ------------------------------------------------------------

// Ident is a CSS identifier, e.g. `block` or `inherit`.
type Ident struct {
	op       Operator
	value    string
	readOnly bool
}

// NewIdent creates an identifier term. Identifiers are stored in lower case.
func NewIdent(s string) *Ident {
	return &Ident{value: strings.ToLower(s)}
}

// NewReadOnlyIdent creates an identifier which rejects modification with
// ErrImmutable. Clones are read-only as well.
func NewReadOnlyIdent(s string) *Ident {
	return &Ident{value: strings.ToLower(s), readOnly: true}
}

// IsReadOnly is true for identifiers created by NewReadOnlyIdent.
func (t *Ident) IsReadOnly() bool { return t.readOnly }

// Value returns the identifier.
func (t *Ident) Value() string { return t.value }

func (t *Ident) String() string     { return t.value }
func (t *Ident) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Ident) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *Ident) Equals(other Term) bool {
	o, ok := other.(*Ident)
	return ok && o != nil && o.op == t.op && o.value == t.value
}

// SetValue is part of interface Mutable.
func (t *Ident) SetValue(s string) error {
	if t.readOnly {
		return fmt.Errorf("%w: identifier %q", ErrImmutable, t.value)
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: empty identifier", ErrValidation)
	}
	t.value = strings.ToLower(strings.TrimSpace(s))
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Ident) SetOperator(op Operator) error {
	if t.readOnly {
		return fmt.Errorf("%w: identifier %q", ErrImmutable, t.value)
	}
	t.op = op
	return nil
}

// IsIdent returns true if t is an identifier with the given (lower-case) name.
func IsIdent(t Term, name string) bool {
	id, ok := t.(*Ident)
	return ok && id != nil && id.value == name
}

// --- Integer ----------------------------------------------------------

// Integer is a number without a fractional part and without a unit.
// Braille lengths are expressed as integers, counting cells or lines.
type Integer struct {
	op    Operator
	value int
}

// NewInteger creates an integer term.
func NewInteger(n int) *Integer {
	return &Integer{value: n}
}

// Value returns the integer.
func (t *Integer) Value() int { return t.value }

func (t *Integer) String() string     { return strconv.Itoa(t.value) }
func (t *Integer) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Integer) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *Integer) Equals(other Term) bool {
	o, ok := other.(*Integer)
	return ok && o != nil && o.op == t.op && o.value == t.value
}

// SetValue is part of interface Mutable.
func (t *Integer) SetValue(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: not an integer: %q", ErrValidation, s)
	}
	t.value = n
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Integer) SetOperator(op Operator) error {
	t.op = op
	return nil
}

// --- Number -----------------------------------------------------------

// Number is a real number with an optional unit. Percentages carry
// the unit "%".
type Number struct {
	op    Operator
	value float64
	unit  string
}

// NewNumber creates a number term with an optional unit.
func NewNumber(x float64, unit string) *Number {
	return &Number{value: x, unit: strings.ToLower(unit)}
}

// Value returns the numeric value.
func (t *Number) Value() float64 { return t.value }

// Unit returns the unit, or "" for plain numbers.
func (t *Number) Unit() string { return t.unit }

// IsPercentage is true for numbers with unit "%".
func (t *Number) IsPercentage() bool { return t.unit == "%" }

func (t *Number) String() string {
	return strconv.FormatFloat(t.value, 'f', -1, 64) + t.unit
}

func (t *Number) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Number) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *Number) Equals(other Term) bool {
	o, ok := other.(*Number)
	return ok && o != nil && o.op == t.op && o.value == t.value && o.unit == t.unit
}

// SetValue is part of interface Mutable. It accepts a number with an
// optional unit, e.g. "1.5em" or "50%".
func (t *Number) SetValue(s string) error {
	x, unit, err := splitDimension(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	t.value, t.unit = x, unit
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Number) SetOperator(op Operator) error {
	t.op = op
	return nil
}

func splitDimension(s string) (float64, string, error) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: not a number: %q", ErrValidation, s)
	}
	return x, strings.ToLower(s[i:]), nil
}

// --- Quoted -----------------------------------------------------------

// Quoted is a string literal. Value holds the unquoted text.
type Quoted struct {
	op    Operator
	value string
}

// NewQuoted creates a string term from unquoted text.
func NewQuoted(s string) *Quoted {
	return &Quoted{value: s}
}

// Value returns the unquoted text.
func (t *Quoted) Value() string { return t.value }

func (t *Quoted) String() string {
	return `"` + escapeDoubleQuoted(t.value) + `"`
}

func (t *Quoted) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Quoted) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *Quoted) Equals(other Term) bool {
	o, ok := other.(*Quoted)
	return ok && o != nil && o.op == t.op && o.value == t.value
}

// SetValue is part of interface Mutable.
func (t *Quoted) SetValue(s string) error {
	t.value = s
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Quoted) SetOperator(op Operator) error {
	t.op = op
	return nil
}

func escapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, "\"\\\n") {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\a `)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// --- Color ------------------------------------------------------------

// Color is a hexadecimal color, e.g. `#ff8800`. Value holds the hex digits
// without the leading '#'.
type Color struct {
	op  Operator
	hex string
}

// NewColor creates a color term from "#rgb", "#rrggbb" or the bare digits.
func NewColor(s string) (*Color, error) {
	c := &Color{}
	if err := c.SetValue(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Value returns the hex digits.
func (t *Color) Value() string { return t.hex }

func (t *Color) String() string     { return "#" + t.hex }
func (t *Color) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Color) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *Color) Equals(other Term) bool {
	o, ok := other.(*Color)
	return ok && o != nil && o.op == t.op && o.hex == t.hex
}

// SetValue is part of interface Mutable.
func (t *Color) SetValue(s string) error {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(hex) != 3 && len(hex) != 6 {
		return fmt.Errorf("%w: not a hex color: %q", ErrValidation, s)
	}
	for _, r := range hex {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return fmt.Errorf("%w: not a hex color: %q", ErrValidation, s)
		}
	}
	t.hex = hex
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Color) SetOperator(op Operator) error {
	t.op = op
	return nil
}

// --- URI --------------------------------------------------------------

// URI is a `url(...)` term.
type URI struct {
	op  Operator
	uri string
}

// NewURI creates a URI term.
func NewURI(uri string) *URI {
	return &URI{uri: uri}
}

// Value returns the URI.
func (t *URI) Value() string { return t.uri }

func (t *URI) String() string     { return `url("` + escapeDoubleQuoted(t.uri) + `")` }
func (t *URI) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *URI) Clone() Term {
	c := *t
	return &c
}

// Equals is part of interface Term.
func (t *URI) Equals(other Term) bool {
	o, ok := other.(*URI)
	return ok && o != nil && o.op == t.op && o.uri == t.uri
}

// SetValue is part of interface Mutable.
func (t *URI) SetValue(s string) error {
	t.uri = s
	return nil
}

// SetOperator is part of interface Mutable.
func (t *URI) SetOperator(op Operator) error {
	t.op = op
	return nil
}

// --- Function ---------------------------------------------------------

// Function is a functional notation like `attr(title)` or `leader('.')`.
type Function struct {
	op   Operator
	name string
	args []Term
}

// NewFunction creates a function term. Arguments are not copied.
func NewFunction(name string, args ...Term) *Function {
	return &Function{name: strings.ToLower(name), args: args}
}

// Name returns the function name without parenthesis.
func (t *Function) Name() string { return t.name }

// Len returns the number of arguments.
func (t *Function) Len() int { return len(t.args) }

// Arg returns argument i or nil.
func (t *Function) Arg(i int) Term {
	if i < 0 || i >= len(t.args) {
		return nil
	}
	return t.args[i]
}

func (t *Function) String() string {
	return t.name + "(" + renderTerms(t.args) + ")"
}

func (t *Function) Operator() Operator { return t.op }

// Clone is part of interface Term.
func (t *Function) Clone() Term {
	return &Function{op: t.op, name: t.name, args: cloneTerms(t.args)}
}

// Equals is part of interface Term.
func (t *Function) Equals(other Term) bool {
	o, ok := other.(*Function)
	return ok && o != nil && o.op == t.op && o.name == t.name && equalTerms(o.args, t.args)
}

// SetValue is part of interface Mutable. It renames the function.
func (t *Function) SetValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: empty function name", ErrValidation)
	}
	t.name = strings.ToLower(strings.TrimSpace(s))
	return nil
}

// SetOperator is part of interface Mutable.
func (t *Function) SetOperator(op Operator) error {
	t.op = op
	return nil
}

// --- List -------------------------------------------------------------

// List is an ordered sequence of terms, used for multi-term values like
// `content: "a" attr(title)`. Operators of the member terms denote the
// separators.
type List struct {
	terms []Term
}

// NewList creates a list from terms. Terms are not copied.
func NewList(terms ...Term) *List {
	return &List{terms: terms}
}

// Len returns the number of terms in the list.
func (l *List) Len() int { return len(l.terms) }

// At returns term i or nil.
func (l *List) At(i int) Term {
	if i < 0 || i >= len(l.terms) {
		return nil
	}
	return l.terms[i]
}

// Terms returns a copy of the member slice. Member terms are shared.
func (l *List) Terms() []Term {
	return append([]Term(nil), l.terms...)
}

// Append adds a term to the end of the list.
func (l *List) Append(t Term) {
	l.terms = append(l.terms, t)
}

func (l *List) String() string     { return renderTerms(l.terms) }
func (l *List) Operator() Operator { return OpSpace }

// Clone is part of interface Term.
func (l *List) Clone() Term {
	return &List{terms: cloneTerms(l.terms)}
}

// Equals is part of interface Term.
func (l *List) Equals(other Term) bool {
	o, ok := other.(*List)
	return ok && o != nil && equalTerms(o.terms, l.terms)
}

// --- Helpers ----------------------------------------------------------

func renderTerms(terms []Term) string {
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(t.Operator().String())
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func cloneTerms(terms []Term) []Term {
	if terms == nil {
		return nil
	}
	c := make([]Term, len(terms))
	for i, t := range terms {
		c[i] = t.Clone()
	}
	return c
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// CloneTerm returns a deep copy of t, or nil if t is nil.
func CloneTerm(t Term) Term {
	if t == nil {
		return nil
	}
	return t.Clone()
}

// EqualTerms compares two possibly absent terms by value.
func EqualTerms(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
