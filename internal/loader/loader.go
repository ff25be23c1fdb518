// Package loader ties parsing and validation together behind a reusable
// schema-holding loader.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"sysctlconf/internal/parser"
	"sysctlconf/internal/schema"
	"sysctlconf/internal/tree"
	"sysctlconf/internal/validator"
)

// Loader validates config documents against one loaded schema. The
// schema is never mutated after construction, so a single Loader can
// check any number of documents sequentially, or be shared read-only.
type Loader struct {
	entries []schema.Entry
}

// New returns a Loader holding the given schema entries.
func New(entries []schema.Entry) *Loader {
	return &Loader{entries: entries}
}

// FromFile loads the schema file at path and returns a Loader over it.
func FromFile(path string) (*Loader, error) {
	entries, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Entries returns the schema in declaration order.
func (l *Loader) Entries() []schema.Entry {
	return l.entries
}

// Load parses config text and validates it against the schema. Either a
// complete validated tree comes back, or an error and no tree.
func (l *Loader) Load(r io.Reader) (tree.Tree, error) {
	t, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(t, l.entries); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadString is Load over an in-memory document.
func (l *Loader) LoadString(s string) (tree.Tree, error) {
	return l.Load(strings.NewReader(s))
}

// LoadFile is Load over the file at path.
func (l *Loader) LoadFile(path string) (tree.Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return l.LoadString(string(content))
}
