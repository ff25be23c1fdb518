// Package report renders check and parse outcomes for the CLI.
//
// Only the outcome is rendered. The tree itself is never serialized
// back out; it belongs to the caller.
package report

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"sysctlconf/internal/parser"
	"sysctlconf/internal/schema"
	"sysctlconf/internal/tree"
	"sysctlconf/internal/validator"
)

// Kind classifies a failure for machine-readable output.
type Kind string

const (
	KindMalformedLine   Kind = "malformed-line"
	KindConflictingPath Kind = "conflicting-path"
	KindUnknownType     Kind = "unknown-type"
	KindSurplusKeys     Kind = "surplus-keys"
	KindMissingKey      Kind = "missing-key"
	KindTypeMismatch    Kind = "type-mismatch"
	KindOther           Kind = "error"
)

// Failure describes why a document was rejected.
type Failure struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of one check or parse run.
type Report struct {
	File   string   `json:"file" yaml:"file"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Leaves int      `json:"leaves,omitempty" yaml:"leaves,omitempty"`
	Error  *Failure `json:"error,omitempty" yaml:"error,omitempty"`
}

// New builds the report for one document. t may be nil when err is set.
func New(file string, t tree.Tree, err error) Report {
	if err != nil {
		return Report{
			File:  file,
			Error: &Failure{Kind: classify(err), Message: err.Error()},
		}
	}
	return Report{File: file, Valid: true, Leaves: len(t.Leaves())}
}

// classify maps pipeline errors onto report kinds.
func classify(err error) Kind {
	switch {
	case errors.Is(err, parser.ErrMalformedLine),
		errors.Is(err, parser.ErrLineTooLong),
		errors.Is(err, schema.ErrMalformedLine):
		return KindMalformedLine
	case errors.Is(err, schema.ErrUnknownType):
		return KindUnknownType
	case errors.Is(err, tree.ErrConflict), errors.Is(err, tree.ErrTooDeep):
		return KindConflictingPath
	}

	var (
		surplus  *validator.SurplusKeysError
		missing  *validator.MissingKeyError
		conflict *validator.ConflictingPathError
		mismatch *validator.TypeMismatchError
	)
	switch {
	case errors.As(err, &surplus):
		return KindSurplusKeys
	case errors.As(err, &missing):
		return KindMissingKey
	case errors.As(err, &conflict):
		return KindConflictingPath
	case errors.As(err, &mismatch):
		return KindTypeMismatch
	}
	return KindOther
}

// FormatText renders the report for terminal output.
func FormatText(r Report) string {
	if r.Valid {
		return fmt.Sprintf("%s: ok (%d leaves)\n", r.File, r.Leaves)
	}
	return fmt.Sprintf("%s: %s: %s\n", r.File, r.Error.Kind, r.Error.Message)
}

// FormatJSON renders the report as indented JSON.
func FormatJSON(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// FormatYAML renders the report as YAML.
func FormatYAML(r Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
