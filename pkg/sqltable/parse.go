package sqltable

import (
	"fmt"
	"strings"
)

// FromString parses a dotted table reference. Accepted forms are
// "<schema>.<table>" and "<db>.<schema>.<table>". Segments may not be empty;
// there is no support for quoted identifiers containing dots, no whitespace
// trimming and no case folding.
func FromString(s string) (Table, error) {
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if p == "" {
			return Table{}, malformed(s)
		}
	}
	switch len(parts) {
	case 2:
		return New(parts[0], parts[1]), nil
	case 3:
		return NewQualified(parts[0], parts[1], parts[2])
	}
	return Table{}, malformed(s)
}

func malformed(s string) error {
	return fmt.Errorf("%w: expected '<schema>.<table>' or '<db>.<schema>.<table>', got %q", ErrMalformedTableRef, s)
}
