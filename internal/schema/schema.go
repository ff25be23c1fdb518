// Package schema loads "key -> type" declarations used to validate
// config trees.
package schema

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sysctlconf/internal/tree"
)

// Type is the scalar type a config leaf must parse as.
type Type string

const (
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeString Type = "string"
	TypeBool   Type = "bool"
)

// Entry declares one dotted key and the type its value must have.
type Entry struct {
	Key  string // dotted path, e.g. "net.port"
	Type Type
}

var (
	// ErrMalformedLine is returned for non-blank lines without a "->".
	ErrMalformedLine = errors.New("malformed schema line")

	// ErrUnknownType is returned for type names outside the four
	// recognized literals. Matching is case-sensitive.
	ErrUnknownType = errors.New("unknown type")
)

// ParseType matches a type name against int, float, string and bool.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeInt, TypeFloat, TypeString, TypeBool:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Parse reads schema text into an ordered entry list. Order follows the
// source text; duplicate keys are allowed and simply validate the same
// leaf again. Any malformed line aborts the whole load.
//
// The format is deliberately simpler than the value-config format: no
// comments, no ignore prefix.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		entry, ok, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) ([]Entry, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile reads and parses the schema file at path.
func LoadFile(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseString(string(content))
}

// parseLine parses one "key -> type" declaration. The second return is
// false for blank lines, which are skipped.
func parseLine(line string) (Entry, bool, error) {
	if line == "" {
		return Entry{}, false, nil
	}
	key, typeName, found := strings.Cut(line, "->")
	if !found {
		return Entry{}, false, fmt.Errorf("%w: missing %q", ErrMalformedLine, "->")
	}
	key = strings.TrimSpace(key)
	if strings.Count(key, ".")+1 > tree.MaxDepth {
		return Entry{}, false, fmt.Errorf("%w: %q", tree.ErrTooDeep, key)
	}
	typ, err := ParseType(strings.TrimSpace(typeName))
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Key: key, Type: typ}, true, nil
}
