// Package validator checks a parsed config tree against a schema.
package validator

import (
	"strconv"
	"strings"

	"sysctlconf/internal/schema"
	"sysctlconf/internal/tree"
)

// Validate checks the tree for exact schema coverage: every leaf must be
// declared (no surplus), every declared key must resolve to a leaf, and
// every leaf value must parse as its declared type. The first failure
// aborts; on success the tree is returned to the caller untouched.
func Validate(t tree.Tree, entries []schema.Entry) error {
	if err := checkSurplus(t, entries); err != nil {
		return err
	}
	for _, entry := range entries {
		v, err := resolve(t, entry.Key)
		if err != nil {
			return err
		}
		if err := checkType(entry, v); err != nil {
			return err
		}
	}
	return nil
}

// checkSurplus flags config leaves the schema never declares. Leaves()
// is sorted, so the error names keys deterministically.
func checkSurplus(t tree.Tree, entries []schema.Entry) error {
	declared := make(map[string]bool, len(entries))
	for _, entry := range entries {
		declared[entry.Key] = true
	}
	var surplus []string
	for _, key := range t.Leaves() {
		if !declared[key] {
			surplus = append(surplus, key)
		}
	}
	if len(surplus) > 0 {
		return &SurplusKeysError{Keys: surplus}
	}
	return nil
}

// resolve walks a dotted schema key to whatever the config stores there.
func resolve(t tree.Tree, key string) (tree.Value, error) {
	segments := strings.Split(key, ".")
	m := t
	for i, seg := range segments {
		v, ok := m[seg]
		if !ok {
			return nil, &MissingKeyError{Key: key}
		}
		if i == len(segments)-1 {
			return v, nil
		}
		next, ok := v.(tree.Tree)
		if !ok {
			return nil, &ConflictingPathError{
				Key:     key,
				Segment: strings.Join(segments[:i+1], "."),
			}
		}
		m = next
	}
	return nil, &MissingKeyError{Key: key}
}

// checkType verifies the resolved value is a leaf that parses as the
// entry's declared scalar type.
func checkType(entry schema.Entry, v tree.Value) error {
	leaf, ok := v.(tree.Leaf)
	if !ok {
		return &TypeMismatchError{Key: entry.Key, Type: entry.Type}
	}
	value := string(leaf)
	switch entry.Type {
	case schema.TypeInt:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return &TypeMismatchError{Key: entry.Key, Value: value, Type: entry.Type}
		}
	case schema.TypeFloat:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return &TypeMismatchError{Key: entry.Key, Value: value, Type: entry.Type}
		}
	case schema.TypeBool:
		// Exactly the two literals; 1/0/yes/no do not count.
		if value != "true" && value != "false" {
			return &TypeMismatchError{Key: entry.Key, Value: value, Type: entry.Type}
		}
	case schema.TypeString:
		// Any leaf passes.
	}
	return nil
}
