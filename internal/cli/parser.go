// Package cli parses command line arguments for the sysctlconf binary.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSubcommand is returned when no recognized subcommand is provided
var ErrNoSubcommand = errors.New("missing subcommand: usage: sysctlconf <check|parse> [flags] <config-file>")

// ErrNoConfigFile is returned when no config file argument is provided
var ErrNoConfigFile = errors.New("no config file provided")

// ErrMissingFlagValue is returned when a flag requires a value but none is provided
var ErrMissingFlagValue = errors.New("flag requires a value")

// Subcommand selects the pipeline to run.
type Subcommand string

const (
	SubcommandCheck Subcommand = "check" // load schema, parse config, validate
	SubcommandParse Subcommand = "parse" // parse config only, no schema
)

// Format selects the report renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Command represents the parsed CLI input.
type Command struct {
	Subcommand Subcommand
	ConfigPath string // the config document to load
	SchemaPath string // --schema <path>, check only
	Format     Format // --format text|json|yaml
}

// ParseArgs parses CLI arguments into a Command. It expects args to be
// os.Args[1:] (excluding the program name).
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrNoSubcommand
	}

	sub := Subcommand(args[0])
	if sub != SubcommandCheck && sub != SubcommandParse {
		return Command{}, ErrNoSubcommand
	}

	cmd := Command{Subcommand: sub, Format: FormatText}

	i := 1
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--schema":
			value, next, err := flagValue(args, i)
			if err != nil {
				return Command{}, err
			}
			cmd.SchemaPath = value
			i = next

		case arg == "--format":
			value, next, err := flagValue(args, i)
			if err != nil {
				return Command{}, err
			}
			switch Format(value) {
			case FormatText, FormatJSON, FormatYAML:
				cmd.Format = Format(value)
			default:
				return Command{}, fmt.Errorf("unknown format %q: want text, json or yaml", value)
			}
			i = next

		case strings.HasPrefix(arg, "--"):
			return Command{}, fmt.Errorf("unknown flag: %s", arg)

		default:
			if cmd.ConfigPath != "" {
				return Command{}, fmt.Errorf("unexpected argument: %s", arg)
			}
			cmd.ConfigPath = arg
			i++
		}
	}

	if cmd.ConfigPath == "" {
		return Command{}, ErrNoConfigFile
	}
	return cmd, nil
}

// flagValue returns the value following the flag at index i and the
// index of the next unparsed argument.
func flagValue(args []string, i int) (string, int, error) {
	if i+1 >= len(args) {
		return "", 0, fmt.Errorf("%w: %s", ErrMissingFlagValue, args[i])
	}
	return args[i+1], i + 2, nil
}
