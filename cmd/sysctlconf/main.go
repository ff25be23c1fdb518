package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"sysctlconf/internal/cli"
	"sysctlconf/internal/loader"
	"sysctlconf/internal/parser"
	"sysctlconf/internal/report"
	"sysctlconf/internal/tree"
)

// schemaEnvVar is the fallback for --schema.
const schemaEnvVar = "SYSCTLCONF_SCHEMA"

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run orchestrates the full execution flow and returns the process exit
// code: 0 valid, 1 invalid document, 2 usage error, 3 unreadable input.
// It is separated from main() to enable testing.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	var (
		t       tree.Tree
		loadErr error
	)
	switch cmd.Subcommand {
	case cli.SubcommandCheck:
		schemaPath := cmd.SchemaPath
		if schemaPath == "" {
			schemaPath = getEnv(environ, schemaEnvVar)
		}
		if schemaPath == "" {
			fmt.Fprintln(stderr, "Error: no schema: pass --schema or set "+schemaEnvVar)
			return 2
		}

		l, err := loader.FromFile(schemaPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(stderr, "schema file not found: %s\n", schemaPath)
				return 3
			}
			fmt.Fprintf(stderr, "failed to parse schema: %v\n", err)
			return 3
		}
		t, loadErr = l.LoadFile(cmd.ConfigPath)

	case cli.SubcommandParse:
		t, loadErr = parseFile(cmd.ConfigPath)
	}

	// Filesystem trouble is not a verdict about the document.
	var pathErr *fs.PathError
	if errors.As(loadErr, &pathErr) {
		fmt.Fprintf(stderr, "cannot read config file: %v\n", loadErr)
		return 3
	}

	rep := report.New(cmd.ConfigPath, t, loadErr)
	out, err := render(rep, cmd.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot render report: %v\n", err)
		return 1
	}
	if rep.Valid {
		fmt.Fprint(stdout, out)
		return 0
	}
	fmt.Fprint(stderr, out)
	return 1
}

// parseFile runs the schema-less pipeline: parse only.
func parseFile(path string) (tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(f)
}

// render picks the report formatter for the requested output format.
func render(rep report.Report, format cli.Format) (string, error) {
	switch format {
	case cli.FormatJSON:
		return report.FormatJSON(rep)
	case cli.FormatYAML:
		return report.FormatYAML(rep)
	default:
		return report.FormatText(rep), nil
	}
}

// getEnv looks up name in an environ-style "KEY=VALUE" slice.
func getEnv(environ []string, name string) string {
	prefix := name + "="
	for _, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):]
		}
	}
	return ""
}
