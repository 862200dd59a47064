// Package config holds one invocation's resolved options and validates
// them before the pipeline runs.
package config

import (
	"fmt"
	"strings"

	"tabpaste/internal/render"
	"tabpaste/internal/sniff"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Issue is a single validation finding. Error-severity issues stop the
// run; warnings are printed and execution continues.
type Issue struct {
	Severity Severity
	Path     string
	Message  string
}

// Output destinations.
const (
	OutputStdout    = "stdout"
	OutputClipboard = "clipboard"
)

// Header override spellings.
const (
	HeaderAuto = "auto"
	HeaderYes  = "yes"
	HeaderNo   = "no"
)

// Options collects one invocation's settings after flag, environment, and
// default resolution.
type Options struct {
	Format      string // dialect spelling, see render.ParseDialect
	Separator   string // separator override, empty means auto-detect
	Header      string // auto | yes | no
	File        string // read input from this path instead of the clipboard
	Editor      bool   // compose input in $EDITOR
	Output      string // stdout | clipboard
	NoHTML      bool   // skip the text/html clipboard target
	MaxRows     int    // cap on data rows, 0 means unlimited
	Name        string // assignment target override
	ColumnMajor bool   // flat-list value order
	Indent      int    // spaces per column line in frame dialects
	Verbose     bool
}

// Default returns the options used when neither flags nor environment say
// otherwise.
func Default() Options {
	return Options{
		Format:  "pandas",
		Header:  HeaderAuto,
		Output:  OutputStdout,
		MaxRows: 200,
		Indent:  4,
	}
}

// Validate reports configuration problems. Errors are always fatal to the
// run; warnings are printed and execution continues.
func (o Options) Validate() []Issue {
	var issues []Issue

	if _, err := render.ParseDialect(o.Format); err != nil {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "format",
			Message:  fmt.Sprintf("unsupported format %q (want one of %s)", o.Format, strings.Join(render.Dialects(), ", ")),
		})
	}

	if o.Separator != "" {
		if _, err := sniff.ParseSeparator(o.Separator); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "sep",
				Message:  fmt.Sprintf("unrecognized separator %q", o.Separator),
			})
		}
	}

	switch o.Header {
	case HeaderAuto, HeaderYes, HeaderNo:
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "header",
			Message:  fmt.Sprintf("invalid header mode %q (want auto, yes, or no)", o.Header),
		})
	}

	switch o.Output {
	case OutputStdout, OutputClipboard:
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "output",
			Message:  fmt.Sprintf("invalid output %q (want stdout or clipboard)", o.Output),
		})
	}

	if o.File != "" && o.Editor {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input",
			Message:  "-file and -editor are mutually exclusive",
		})
	}

	if o.MaxRows < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "max-rows",
			Message:  "must be zero (unlimited) or positive",
		})
	}

	if o.Indent < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "indent",
			Message:  "must be zero (default) or positive",
		})
	}

	if o.Name != "" && render.Identifier(o.Name) != o.Name {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Path:     "name",
			Message:  fmt.Sprintf("%q is not a plain identifier; the generated code may not evaluate", o.Name),
		})
	}

	return issues
}

// HasError reports whether any issue is fatal.
func HasError(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}
