package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermCloneIsDeep(t *testing.T) {
	f := NewFunction("leader", NewQuoted("."))
	c := f.Clone().(*Function)
	require.True(t, f.Equals(c))
	require.NoError(t, c.Arg(0).(Mutable).SetValue("-"))
	if f.Equals(c) {
		t.Errorf("expected clone to be independent of original, both are %s", f)
	}
	assert.Equal(t, `leader(".")`, f.String())
}

func TestTermEqualsConsidersOperator(t *testing.T) {
	a, b := NewIdent("x"), NewIdent("x")
	assert.True(t, a.Equals(b))
	require.NoError(t, b.SetOperator(OpComma))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(NewQuoted("x")), "different term types must not be equal")
	assert.True(t, EqualTerms(nil, nil))
	assert.False(t, EqualTerms(a, nil))
}

func TestMutableValidation(t *testing.T) {
	n := NewInteger(1)
	err := n.SetValue("two")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 1, n.Value())
	c, err := NewColor("#abc")
	require.NoError(t, err)
	assert.Error(t, c.SetValue("#xyz"))
	d := NewNumber(0, "")
	require.NoError(t, d.SetValue("2.5em"))
	assert.Equal(t, "2.5em", d.String())
}

func TestDeclarationAccessors(t *testing.T) {
	d := NewDeclaration("Margin-Left", true, SourceLocation{Origin: "test"}, NewInteger(2))
	assert.Equal(t, "margin-left", d.Property())
	assert.Equal(t, 1, d.Len())
	assert.Nil(t, d.Term(1))
	assert.Equal(t, "margin-left: 2 !important", d.String())
	plain := NewDeclaration("margin-left", false, SourceLocation{}, NewInteger(3))
	assert.Equal(t, 1, CompareImportance(d, plain))
	assert.Equal(t, -1, CompareImportance(plain, d))
	assert.Equal(t, 0, CompareImportance(plain, plain))
}

func TestColorConversion(t *testing.T) {
	c, err := NewColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", ColorString(ColorOf(c)))
	assert.Equal(t, "#ff0000", ColorString(ColorOf(NewIdent("red"))))
	assert.Nil(t, ColorOf(NewInteger(3)))
}

func TestReadOnlyIdent(t *testing.T) {
	id := NewReadOnlyIdent("Inherit")
	assert.True(t, id.IsReadOnly())
	assert.True(t, IsIdent(id, "inherit"))
	assert.True(t, id.Equals(NewIdent("inherit")), "read-only identifiers compare by value")
	assert.True(t, errors.Is(id.SetValue("x"), ErrImmutable))
	assert.True(t, errors.Is(id.SetOperator(OpComma), ErrImmutable))
	c := id.Clone().(*Ident)
	assert.True(t, c.IsReadOnly())
	assert.False(t, NewIdent("x").IsReadOnly())
}
