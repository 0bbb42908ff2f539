// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jsonvet checks whether a file contains syntactically valid JSON.
//
// The exit status encodes the outcome: 0 means the file is valid, any other
// value is the numeric error kind of the first defect found (see the
// jsonvet package for the full enumeration). Unanticipated internal
// failures exit with the reserved catch-all code.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/jsonvet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	maxDepth int
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "jsonvet FILE",
	Short: "Check whether FILE contains syntactically valid JSON",
	Long: `Check whether FILE contains syntactically valid JSON (RFC 8259).

On success, a confirmation is printed and the exit status is 0. On failure,
the kind of the first defect and its 1-indexed line and column are printed
to stderr, and the exit status is the numeric value of the kind.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		if maxDepth < 0 {
			return fmt.Errorf("invalid --max-depth %d: value must not be negative", maxDepth)
		}
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		if err := checkPath(path); err != nil {
			return err
		}
		v := jsonvet.Validator{MaxDepth: maxDepth}
		if err := v.ValidateFile(path); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "JSON is valid")
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0,
		"Maximum object/array nesting depth (0 uses the default)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"Disable colorized output")
}

// checkPath applies the file-level policy checks that run before the
// validator opens anything: an operand must be present and must look like a
// JSON file.
func checkPath(path string) *jsonvet.ValidationError {
	if path == "" || !strings.Contains(path, ".") {
		return &jsonvet.ValidationError{Kind: jsonvet.FileMissing, Msg: "no file specified"}
	}
	if !strings.HasSuffix(path, ".json") {
		return &jsonvet.ValidationError{Kind: jsonvet.FileType, Msg: "not a .json file: " + path}
	}
	return nil
}

// exitCode maps the outcome of a run to the process exit status: 0 for
// success, the kind's numeric value for a validation error, and the
// catch-all code for anything unanticipated.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var verr *jsonvet.ValidationError
	if errors.As(err, &verr) {
		return int(verr.Kind)
	}
	return int(jsonvet.Unrecognized)
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	code := exitCode(err)
	if code == int(jsonvet.Unrecognized) {
		color.New(color.FgRed).Fprintf(os.Stderr, "Unexpected error: %v\n", err)
	} else {
		color.New(color.FgRed).Fprintf(os.Stderr, "JSON is invalid: %v\n", err)
	}
	os.Exit(code)
}
