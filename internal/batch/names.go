package batch

import (
	"fmt"
	"path"
	"strings"
)

// Labels are the two object counts encoded in a stimulus filename, kept as
// the literal strings from the name.
type Labels struct {
	First  string
	Second string
}

// ParseName extracts the labels from a filename of the form
// <prefix>_<ignored>_<label1>_<label2>.<ext>.
//
// The name is split on "_" into at most four fields, so the fourth field
// keeps any further underscores; label2 is that field up to its first ".".
// Only the base name is considered.
//
// Returns ErrMalformedName if there are fewer than four fields or either
// label is empty.
func ParseName(name string) (Labels, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	fields := strings.SplitN(base, "_", 4)
	if len(fields) < 4 {
		return Labels{}, fmt.Errorf("%w: %q has %d underscore-separated fields, want 4", ErrMalformedName, base, len(fields))
	}

	first := fields[2]
	second, _, _ := strings.Cut(fields[3], ".")
	if first == "" || second == "" {
		return Labels{}, fmt.Errorf("%w: %q has an empty label", ErrMalformedName, base)
	}

	return Labels{First: first, Second: second}, nil
}
