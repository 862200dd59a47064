package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tabpaste/internal/config"
	"tabpaste/internal/convert"
	"tabpaste/internal/htmltable"
	"tabpaste/internal/jsontable"
	"tabpaste/internal/render"
	"tabpaste/internal/sniff"
	"tabpaste/internal/xlsxtable"
)

// deps are external seams for testability.
//
// When to use:
//   - Unit tests: inject fake clipboard and editor seams and capture output.
//   - Alternate runtimes: swap the clipboard implementation.
type deps struct {
	ReadClipboard     func() (string, error)
	ReadClipboardHTML func() (string, bool)
	WriteClipboard    func(string) error
	OpenEditor        func(ctx context.Context, editor string) (string, error)
	StdinIsPiped      func() bool
	Getenv            func(string) string
}

// run is split out from main so we can unit test the command without
// spawning an OS process.
//
// It returns a Unix-style exit code:
//   - 0 for success
//   - 2 for usage/config errors
//   - 1 for operational/runtime errors
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	d deps,
) int {
	if d.ReadClipboard == nil {
		d.ReadClipboard = func() (string, error) { return "", errors.New("clipboard unavailable") }
	}
	if d.ReadClipboardHTML == nil {
		d.ReadClipboardHTML = func() (string, bool) { return "", false }
	}
	if d.WriteClipboard == nil {
		d.WriteClipboard = func(string) error { return errors.New("clipboard unavailable") }
	}
	if d.OpenEditor == nil {
		d.OpenEditor = func(context.Context, string) (string, error) { return "", errors.New("editor unavailable") }
	}
	if d.StdinIsPiped == nil {
		d.StdinIsPiped = func() bool { return false }
	}
	if d.Getenv == nil {
		d.Getenv = func(string) string { return "" }
	}

	// parseFlags reports its own problems to stderr.
	opts, err := parseFlags(args, stderr, d.Getenv)
	if err != nil {
		return 2
	}

	issues := opts.Validate()
	for _, iss := range issues {
		fmt.Fprintf(stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasError(issues) {
		return 2
	}

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(stderr, "", 0)
	}

	start := time.Now()
	req := buildRequest(opts)

	res, err := convertInput(ctx, opts, req, stdin, d, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	logger.Printf("table: columns=%d rows=%d format=%s",
		len(res.Table.Columns), res.Table.RowCount, req.Dialect)

	if opts.Output == config.OutputClipboard {
		if err := d.WriteClipboard(res.Code); err != nil {
			fmt.Fprintf(stderr, "write clipboard: %v\n", err)
			return 1
		}
		logger.Printf("copied %d bytes to clipboard", len(res.Code))
	} else {
		fmt.Fprintln(stdout, res.Code)
	}

	logger.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	return 0
}

// parseFlags parses command arguments into options. Does not exit the
// process (caller decides the exit code).
func parseFlags(args []string, stderr io.Writer, getenv func(string) string) (config.Options, error) {
	fs := flag.NewFlagSet("tabpaste", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := config.Default()
	var (
		format  string
		output  string
		maxRows int
	)

	fs.StringVar(&format, "format", "", "output dialect: pandas, polars, vector or vector-vertical (default pandas, env TABPASTE_FORMAT)")
	fs.StringVar(&opts.Separator, "sep", "", "separator override: comma, tab, pipe, semicolon, whitespace or a single character (default auto-detect)")
	fs.StringVar(&opts.Header, "header", config.HeaderAuto, "treat the first row as a header: auto, yes or no")
	fs.StringVar(&opts.File, "file", "", "read input from this file instead of the clipboard (- for stdin; .xlsx, .json and .html route by extension)")
	fs.BoolVar(&opts.Editor, "editor", false, "compose the input in $EDITOR (fallback vi)")
	fs.StringVar(&output, "output", "", "destination for the generated code: stdout or clipboard (default stdout, env TABPASTE_OUTPUT)")
	fs.BoolVar(&opts.NoHTML, "no-html", false, "ignore the clipboard's text/html target")
	fs.IntVar(&maxRows, "max-rows", -1, "cap on data rows, 0 means unlimited (default 200, env TABPASTE_MAX_ROWS)")
	fs.StringVar(&opts.Name, "name", "", "variable name for the generated assignment (default df or data)")
	fs.BoolVar(&opts.ColumnMajor, "column-major", false, "emit vector output column by column instead of row by row")
	fs.IntVar(&opts.Indent, "indent", 4, "spaces of indent inside DataFrame constructors")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose diagnostics on stderr")

	if err := fs.Parse(args); err != nil {
		return config.Options{}, err
	}

	// Decide format: flag → env → default.
	if format == "" {
		format = getenv("TABPASTE_FORMAT")
	}
	if format != "" {
		opts.Format = format
	}

	// Decide output: flag → env → default.
	if output == "" {
		output = getenv("TABPASTE_OUTPUT")
	}
	if output != "" {
		opts.Output = output
	}

	// Decide the row cap: flag → env → default.
	if maxRows == -1 {
		if v := getenv("TABPASTE_MAX_ROWS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("TABPASTE_MAX_ROWS: %q is not a number", v)
				fmt.Fprintln(stderr, err)
				return config.Options{}, err
			}
			opts.MaxRows = n
		}
	} else {
		opts.MaxRows = maxRows
	}

	return opts, nil
}

// buildRequest maps validated options onto a pipeline request.
func buildRequest(opts config.Options) convert.Request {
	dialect, _ := render.ParseDialect(opts.Format)
	req := convert.Request{
		Dialect: dialect,
		MaxRows: opts.MaxRows,
		Render: render.Options{
			Indent:      opts.Indent,
			Name:        opts.Name,
			ColumnMajor: opts.ColumnMajor,
		},
	}
	if opts.Separator != "" {
		sep, _ := sniff.ParseSeparator(opts.Separator)
		req.Separator = &sep
	}
	switch opts.Header {
	case config.HeaderYes:
		yes := true
		req.Header = &yes
	case config.HeaderNo:
		no := false
		req.Header = &no
	}
	return req
}

// convertInput picks the input source by precedence: explicit file, editor,
// piped stdin, clipboard.
func convertInput(
	ctx context.Context,
	opts config.Options,
	req convert.Request,
	stdin io.Reader,
	d deps,
	logger *log.Logger,
) (convert.Result, error) {
	switch {
	case opts.File != "":
		logger.Printf("input: source=file path=%s", opts.File)
		return convertFile(opts.File, req, stdin)

	case opts.Editor:
		// Decide the editor command: env → default.
		editor := d.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}
		logger.Printf("input: source=editor command=%s", editor)
		text, err := d.OpenEditor(ctx, editor)
		if err != nil {
			return convert.Result{}, err
		}
		return convertText(text, req)

	case d.StdinIsPiped():
		text, err := readAll(stdin, "stdin")
		if err != nil {
			return convert.Result{}, err
		}
		logger.Printf("input: source=stdin bytes=%d", len(text))
		return convertText(text, req)

	default:
		return convertClipboard(opts, req, d, logger)
	}
}

// convertFile reads one file, routing structured formats by extension.
// "-" reads stdin regardless of how the process was started.
func convertFile(path string, req convert.Request, stdin io.Reader) (convert.Result, error) {
	if path == "-" {
		text, err := readAll(stdin, "stdin")
		if err != nil {
			return convert.Result{}, err
		}
		return convertText(text, req)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := xlsxtable.ReadFile(path)
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		return convert.FromRows(rows, req)

	case ".html", ".htm":
		b, err := os.ReadFile(path)
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		rows, err := htmltable.Extract(string(b))
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		return convert.FromRows(rows, req)

	case ".json":
		b, err := os.ReadFile(path)
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		rows, err := jsontable.Parse(string(b))
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		return convert.FromRows(rows, req)

	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return convert.Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		return convertText(string(b), req)
	}
}

// convertText handles plain text from any source. Recognized structured
// shapes (GitHub artifact listings, pasted JSON) convert as rows; everything
// else goes through separator detection.
func convertText(text string, req convert.Request) (convert.Result, error) {
	if rows, ok := sniff.ParseGitHubArtifacts(text); ok {
		return convert.FromRows(rows, req)
	}
	if jsontable.Detect(text) {
		if rows, err := jsontable.Parse(text); err == nil {
			return convert.FromRows(rows, req)
		}
		// Malformed or non-tabular JSON still reads fine as plain text.
	}
	return convert.FromText(text, req)
}

// convertClipboard follows the clipboard target precedence: plain text when
// it is a recognized structured shape or already looks tabular, then the
// rich text/html target, then any text at all.
func convertClipboard(
	opts config.Options,
	req convert.Request,
	d deps,
	logger *log.Logger,
) (convert.Result, error) {
	text, err := d.ReadClipboard()
	if err != nil {
		return convert.Result{}, fmt.Errorf("read clipboard: %w", err)
	}

	if strings.TrimSpace(text) != "" {
		if rows, ok := sniff.ParseGitHubArtifacts(text); ok {
			logger.Printf("input: source=clipboard shape=artifacts")
			return convert.FromRows(rows, req)
		}
		if jsontable.Detect(text) {
			if rows, err := jsontable.Parse(text); err == nil {
				logger.Printf("input: source=clipboard shape=json")
				return convert.FromRows(rows, req)
			}
		}
		if sniff.IsTabular(text) {
			logger.Printf("input: source=clipboard shape=text bytes=%d", len(text))
			return convert.FromText(text, req)
		}
	}

	if !opts.NoHTML {
		if html, ok := d.ReadClipboardHTML(); ok {
			rows, err := htmltable.Extract(html)
			switch {
			case err == nil:
				logger.Printf("input: source=clipboard shape=html rows=%d", len(rows.Records))
				return convert.FromRows(rows, req)
			case !errors.Is(err, htmltable.ErrNoTable):
				return convert.Result{}, fmt.Errorf("clipboard html: %w", err)
			}
		}
	}

	if strings.TrimSpace(text) != "" {
		logger.Printf("input: source=clipboard shape=text bytes=%d", len(text))
		return convert.FromText(text, req)
	}
	return convert.Result{}, convert.ErrEmptyInput
}

// readAll drains r, naming the source in any error.
func readAll(r io.Reader, source string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", source, err)
	}
	return string(b), nil
}
