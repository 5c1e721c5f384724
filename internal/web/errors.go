package web

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Business outcomes are returned as values so every call site has to
// branch on them; nothing in the service layer panics or throws.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not the owner of this resource")
	ErrNotFound        = errors.New("record not found")
)

// FieldErrors carries validation failures as a field -> message map.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("{")
	for i, field := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", field, e[field])
	}
	b.WriteString("}")
	return b.String()
}

// AsFieldErrors unwraps a FieldErrors value from an error chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
