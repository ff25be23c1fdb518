// Package parser reads sysctl-style key/value text into a config tree.
//
// The format is line oriented: `key.sub = value` entries, full-line
// comments starting with '#' or ';', and blank lines. A leading '-'
// turns the line's own failures into silent skips instead of aborting
// the load.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"sysctlconf/internal/tree"
)

// MaxLineLen bounds a single input line. Longer lines abort the load
// with ErrLineTooLong.
const MaxLineLen = 64 * 1024

var (
	// ErrMalformedLine is returned for lines with no '=', an empty key or
	// value after trimming, or whitespace inside the key.
	ErrMalformedLine = errors.New("malformed line")

	// ErrLineTooLong is returned when a line exceeds MaxLineLen.
	ErrLineTooLong = errors.New("line too long")
)

// LineError reports a failure on a single input line.
type LineError struct {
	Line int    // 1-based line number
	Text string // the offending line, as read
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// errorPolicy decides what happens to a line's own errors: lines carrying
// the '-' prefix suppress them, everything else propagates. The line
// logic is identical either way, so the policy is a value threaded
// through it rather than a second code path.
type errorPolicy int

const (
	propagate errorPolicy = iota
	suppress
)

func (p errorPolicy) apply(err error) error {
	if p == suppress {
		return nil
	}
	return err
}

// Parse reads config text line by line and builds a tree. The first
// failure on a non-ignored line aborts the whole load; no partial tree
// is ever returned.
func Parse(r io.Reader) (tree.Tree, error) {
	t := tree.Tree{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineLen)

	line := 0
	for sc.Scan() {
		line++
		if err := insertLine(t, sc.Text()); err != nil {
			return nil, &LineError{Line: line, Text: sc.Text(), Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: line + 1, Err: ErrLineTooLong}
		}
		return nil, err
	}
	return t, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (tree.Tree, error) {
	return Parse(strings.NewReader(s))
}

// insertLine applies the per-line rules: blank and comment lines are
// skipped, a leading '-' switches the error policy to suppress, and
// everything else must be a key=value entry.
func insertLine(dst tree.Tree, line string) error {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
		return nil
	}
	policy := propagate
	if strings.HasPrefix(line, "-") {
		line = line[1:]
		policy = suppress
	}
	return policy.apply(insertEntry(dst, line))
}

// insertEntry splits a key=value line on the first '=' and stores the
// leaf. The last write to a leaf wins; path conflicts surface as
// tree.ErrConflict.
func insertEntry(dst tree.Tree, line string) error {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return fmt.Errorf("%w: missing %q", ErrMalformedLine, "=")
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrMalformedLine)
	case value == "":
		return fmt.Errorf("%w: empty value", ErrMalformedLine)
	case strings.ContainsFunc(key, unicode.IsSpace):
		return fmt.Errorf("%w: whitespace in key %q", ErrMalformedLine, key)
	}
	return dst.Insert(strings.Split(key, "."), value)
}
