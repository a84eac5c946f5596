package schema

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
)

// Column is one (name, storedType) pair in a Schema.
type Column struct {
	Name string
	Type Type
}

// Schema is the ordered sequence of columns describing a dataset. Column
// names must be unique; order is significant for both row mode (it fixes
// byte offsets within a row) and columnar mode (it fixes which column
// occupies which slice of the fixed region).
type Schema []Column

// Validate checks that s has at least one column, that every column declares
// a type from the closed enum, and that no two columns share a name. It is called by NewRowLayout and
// NewColumnarLayout before any offsets are computed.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errs.ErrEmptySchema
	}

	seen := make(map[string]struct{}, len(s))
	for _, col := range s {
		if !col.Type.IsValid() {
			return fmt.Errorf("%w: column %q has type %d", errs.ErrUnsupportedType, col.Name, col.Type)
		}
		if _, ok := seen[col.Name]; ok {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, col.Name)
		}
		seen[col.Name] = struct{}{}
	}

	return nil
}

// NumColumns returns len(s).
func (s Schema) NumColumns() int {
	return len(s)
}

// IndexOf returns the position of the named column, or -1 if absent.
func (s Schema) IndexOf(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}

	return -1
}
