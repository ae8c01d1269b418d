package value

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is matched by every UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidArgument signals input that does not have the shape an
	// operation requires. It is wrapped with context by the caller site.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnsupportedTypeError reports a value whose kind cannot be represented in a
// nested value tree, such as a function, a channel or a struct instance.
type UnsupportedTypeError struct {
	// TypeName names the offending type.
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s: only primitives, sequences and mappings can be copied", e.TypeName)
}

// Is makes errors.Is(err, ErrUnsupportedType) hold.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
