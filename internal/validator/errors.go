package validator

import (
	"fmt"
	"strings"

	"sysctlconf/internal/schema"
)

// SurplusKeysError reports config leaves the schema does not declare.
type SurplusKeysError struct {
	Keys []string // sorted dotted paths
}

func (e *SurplusKeysError) Error() string {
	return fmt.Sprintf("surplus keys: %s", strings.Join(e.Keys, ", "))
}

// MissingKeyError reports a schema key with no leaf in the config, either
// because an intermediate section or the final segment is absent.
type MissingKeyError struct {
	Key string // the schema entry's dotted path
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key not found: key=%s", e.Key)
}

// ConflictingPathError reports a schema key whose path runs through a
// leaf where a section was expected.
type ConflictingPathError struct {
	Key     string // the schema entry's dotted path
	Segment string // the dotted path of the leaf blocking the walk
}

func (e *ConflictingPathError) Error() string {
	return fmt.Sprintf("invalid path: key=%s: %q is a leaf, not a section", e.Key, e.Segment)
}

// TypeMismatchError reports a leaf whose value does not parse as the
// declared type, or a schema key that resolved to a whole section.
type TypeMismatchError struct {
	Key   string
	Value string // empty when the key resolved to a section
	Type  schema.Type
}

func (e *TypeMismatchError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid value: key=%s, type=%s: not a leaf", e.Key, e.Type)
	}
	return fmt.Sprintf("invalid value: key=%s, value=%s, type=%s", e.Key, e.Value, e.Type)
}
