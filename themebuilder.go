package themebuilder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellenic-development/theme-builder/pkg/formatter"
	"github.com/hellenic-development/theme-builder/pkg/scale"
	"github.com/hellenic-development/theme-builder/pkg/upstream"
	"github.com/hellenic-development/theme-builder/pkg/variables"
)

// Version is the current theme-builder version.
const Version = "1.0.0"

// Options configures a build.
type Options struct {
	RowsPath   string   // variables table (CSV), default "data/input/theme.csv"
	ScalePath  string   // token scale (JSON), default "data/input/scale.json"
	OutputPath string   // generated stylesheet, default "data/output/output.css"
	ModulesDir string   // base directory for relative Sources, default "node_modules"
	Sources    []string // nil = upstream.DefaultSources
	Marker     string   // "" = formatter.DefaultMarker
	Logger     Logger   // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the build output.
type Result struct {
	Stylesheet string
	RowCount   int
	Batch      *variables.Batch
	Upstream   *upstream.Result
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

func (o *Options) applyDefaults() {
	if o.RowsPath == "" {
		o.RowsPath = "data/input/theme.csv"
	}
	if o.ScalePath == "" {
		o.ScalePath = "data/input/scale.json"
	}
	if o.OutputPath == "" {
		o.OutputPath = "data/output/output.css"
	}
	if o.ModulesDir == "" {
		o.ModulesDir = "node_modules"
	}
	if o.Sources == nil {
		o.Sources = upstream.DefaultSources
	}
	if o.Marker == "" {
		o.Marker = formatter.DefaultMarker
	}
}

// Run executes the build pipeline and returns the stylesheet without writing it.
// Failing to read the variables table or the scale is fatal; rows and upstream
// files that fail are logged and left out.
func Run(opts Options) (*Result, error) {
	opts.applyDefaults()

	opts.logInfo("Reading variables from %s...", opts.RowsPath)
	rows, err := variables.ReadRowsFile(opts.RowsPath)
	if err != nil {
		return nil, fmt.Errorf("read variables: %w", err)
	}
	opts.logInfo("Number of rows in CSV: %d", len(rows))

	opts.logInfo("Reading scale from %s...", opts.ScalePath)
	tokens, err := scale.LoadFile(opts.ScalePath)
	if err != nil {
		return nil, fmt.Errorf("read scale: %w", err)
	}
	opts.logInfo("Scale tokens: %d", len(tokens))

	batch := variables.ResolveAll(rows, tokens)
	for _, r := range batch.Results {
		if r.OK() {
			opts.logInfo("Successfully processed variable %q using method %q", r.Row.VariableName, r.Row.Method)
		} else {
			opts.logError("Process failed for variable %q (line %d): %v", r.Row.VariableName, r.Row.Line, r.Err)
		}
	}
	if failed := batch.Failed(); len(failed) > 0 {
		opts.logWarn("Failed variables: %q", failed)
	} else {
		opts.logInfo("Failed variables: none")
	}

	opts.logInfo("Concatenating %d upstream stylesheet(s) from %s...", len(opts.Sources), opts.ModulesDir)
	css := upstream.Aggregate(opts.ModulesDir, opts.Sources)
	for _, readErr := range css.Errors {
		opts.logError("%v", readErr)
	}

	return &Result{
		Stylesheet: formatter.ToStylesheet(css.CSS, opts.Marker, batch.Declarations()),
		RowCount:   len(rows),
		Batch:      batch,
		Upstream:   css,
	}, nil
}

// Build runs the pipeline and writes the stylesheet to opts.OutputPath in one
// shot, replacing any previous content.
func Build(opts Options) (*Result, error) {
	opts.applyDefaults()

	result, err := Run(opts)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}

	opts.logInfo("Writing stylesheet to %s...", opts.OutputPath)
	if err := os.WriteFile(opts.OutputPath, []byte(result.Stylesheet), 0644); err != nil {
		return nil, fmt.Errorf("write stylesheet: %w", err)
	}
	opts.logInfo("Build process completed!")

	return result, nil
}
