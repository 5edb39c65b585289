// Package themebuilder generates a theme stylesheet from a table of CSS custom
// properties and a design-token color scale, appended to the upstream Primer
// primitive stylesheets.
//
// The CLI lives in cmd/theme-builder; this root package exposes the same
// pipeline as a Go API so that callers can embed the build in their own tools
// without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named themebuilder:
//
//	import "github.com/hellenic-development/theme-builder" // package themebuilder
//
// # Quick start
//
//	result, err := themebuilder.Build(themebuilder.Options{
//	    RowsPath:   "data/input/theme.csv",
//	    ScalePath:  "data/input/scale.json",
//	    OutputPath: "data/output/output.css",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Batch.Failed())
//
// # Inputs
//
// The variables table is a CSV file with a header naming the method,
// variableName, scaleToken and alpha columns. Each row becomes one declaration
// in the generated :root block:
//
//	method,variableName,scaleToken,alpha
//	hex,--color-canvas-default,gray-0,
//	rgba,--color-canvas-overlay,gray-0,0.8
//	skip,--color-handled-elsewhere,,
//
// Rows whose method is skip, shadow or empty are left out. The scale is a flat
// JSON object mapping token names to hex colors.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. Per-row and per-file failures are
// also available as data on the returned [Result].
package themebuilder
