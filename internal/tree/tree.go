package tree

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxDepth bounds the number of path segments a key may have. Input
// documents are not trusted to keep nesting sane on their own.
const MaxDepth = 64

var (
	// ErrConflict is returned when a path would use an existing leaf as a
	// subtree, or redefine an existing subtree as a leaf.
	ErrConflict = errors.New("conflicting path")

	// ErrTooDeep is returned when a key has more than MaxDepth segments.
	ErrTooDeep = errors.New("too many path segments")

	// ErrEmptyPath is returned when an operation is given no segments.
	ErrEmptyPath = errors.New("empty path")
)

// Value is one node of a config tree: either a Leaf holding a raw string
// value or a Tree holding named children. A given path is one or the
// other, never both.
type Value interface {
	isValue()
}

// Leaf is a terminal config value, kept exactly as written in the source.
type Leaf string

// Tree maps a key segment to the value stored under it.
type Tree map[string]Value

func (Leaf) isValue() {}
func (Tree) isValue() {}

// Insert stores value as a leaf at the given path segments, creating
// intermediate subtrees as needed. Re-declaring an existing leaf
// overwrites it silently; crossing an existing leaf on the way down, or
// replacing an existing subtree with a leaf, is a conflict.
func (t Tree) Insert(segments []string, value string) error {
	if len(segments) == 0 {
		return ErrEmptyPath
	}
	if len(segments) > MaxDepth {
		return fmt.Errorf("%w: %d segments in %q", ErrTooDeep, len(segments), strings.Join(segments, "."))
	}

	m := t
	for _, seg := range segments[:len(segments)-1] {
		child, ok := m[seg]
		if !ok {
			next := Tree{}
			m[seg] = next
			m = next
			continue
		}
		next, ok := child.(Tree)
		if !ok {
			return fmt.Errorf("%w: %q is a leaf, not a section", ErrConflict, seg)
		}
		m = next
	}

	last := segments[len(segments)-1]
	if child, ok := m[last]; ok {
		if _, isTree := child.(Tree); isTree {
			return fmt.Errorf("%w: %q is a section, not a leaf", ErrConflict, last)
		}
	}
	m[last] = Leaf(value)
	return nil
}

// Get resolves a dotted path and reports whether anything lives there.
// The caller distinguishes Leaf from Tree with a type switch.
func (t Tree) Get(path string) (Value, bool) {
	return t.Lookup(strings.Split(path, "."))
}

// Lookup resolves a path given as segments.
func (t Tree) Lookup(segments []string) (Value, bool) {
	m := t
	for i, seg := range segments {
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		next, ok := v.(Tree)
		if !ok {
			return nil, false
		}
		m = next
	}
	return nil, false
}

// Leaves returns the dotted paths of every leaf in the tree, sorted.
func (t Tree) Leaves() []string {
	var keys []string
	t.appendLeaves("", &keys)
	sort.Strings(keys)
	return keys
}

func (t Tree) appendLeaves(prefix string, keys *[]string) {
	for k, v := range t {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch v := v.(type) {
		case Tree:
			v.appendLeaves(path, keys)
		case Leaf:
			*keys = append(*keys, path)
		}
	}
}
