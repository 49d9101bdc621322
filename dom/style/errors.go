package style

import "errors"

// Error kinds of the styling packages. Functions returning one of these wrap
// it with additional context; use errors.Is to check.
var (
	// ErrValidation flags input which is not a well-formed declaration or value.
	ErrValidation = errors.New("invalid style value")
	// ErrState flags an operation not permitted in a style map's current state.
	ErrState = errors.New("operation not permitted in current state")
	// ErrType flags an operand of an unsupported concrete type.
	ErrType = errors.New("unsupported type")
	// ErrNaming flags a property name violating the dialect naming rules.
	ErrNaming = errors.New("illegal property name")
	// ErrImmutable flags an attempt to modify a read-only value.
	ErrImmutable = errors.New("value is immutable")
)
