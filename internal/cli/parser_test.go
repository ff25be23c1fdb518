package cli

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{
			name: "check with schema",
			args: []string{"check", "--schema", "schema.conf", "values.conf"},
			want: Command{Subcommand: SubcommandCheck, SchemaPath: "schema.conf", ConfigPath: "values.conf", Format: FormatText},
		},
		{
			name: "parse",
			args: []string{"parse", "values.conf"},
			want: Command{Subcommand: SubcommandParse, ConfigPath: "values.conf", Format: FormatText},
		},
		{
			name: "json format",
			args: []string{"parse", "--format", "json", "values.conf"},
			want: Command{Subcommand: SubcommandParse, ConfigPath: "values.conf", Format: FormatJSON},
		},
		{
			name: "yaml format",
			args: []string{"check", "--format", "yaml", "--schema", "s", "c"},
			want: Command{Subcommand: SubcommandCheck, SchemaPath: "s", ConfigPath: "c", Format: FormatYAML},
		},
		{
			name: "flags after config path",
			args: []string{"check", "values.conf", "--schema", "schema.conf"},
			want: Command{Subcommand: SubcommandCheck, SchemaPath: "schema.conf", ConfigPath: "values.conf", Format: FormatText},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("ParseArgs(%v) failed: %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error // nil means any error is fine
	}{
		{"no args", nil, ErrNoSubcommand},
		{"unknown subcommand", []string{"verify", "c"}, ErrNoSubcommand},
		{"no config file", []string{"check", "--schema", "s"}, ErrNoConfigFile},
		{"missing schema value", []string{"check", "c", "--schema"}, ErrMissingFlagValue},
		{"missing format value", []string{"parse", "c", "--format"}, ErrMissingFlagValue},
		{"unknown format", []string{"parse", "--format", "xml", "c"}, nil},
		{"unknown flag", []string{"parse", "--verbose", "c"}, nil},
		{"two config files", []string{"parse", "a.conf", "b.conf"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			if err == nil {
				t.Fatalf("ParseArgs(%v) succeeded, want error", tt.args)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestParseArgs_UnknownFormatNamesFormats(t *testing.T) {
	_, err := ParseArgs([]string{"parse", "--format", "xml", "c"})
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("err = %v, want the bad format named", err)
	}
}
