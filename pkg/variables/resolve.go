package variables

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellenic-development/theme-builder/pkg/color"
	"github.com/hellenic-development/theme-builder/pkg/scale"
)

var (
	// ErrMissingField is returned when a row has no variable name or no scale token.
	ErrMissingField = errors.New("variable or token is empty")
	// ErrTokenNotFound is returned when a row's scale token is not in the scale.
	ErrTokenNotFound = errors.New("scale token not found")
	// ErrUnsupportedMethod is returned for methods that cannot be resolved.
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// Result is the outcome of resolving one row.
type Result struct {
	Row         Row
	Declaration string // "<name>: <value>;", empty on failure
	Err         error
}

// OK reports whether the row produced a declaration.
func (r Result) OK() bool {
	return r.Err == nil && r.Declaration != ""
}

// Batch holds the outcome of resolving a whole table.
type Batch struct {
	Results []Result // resolved rows in table order
	Skipped []Row    // rows excluded by method before resolution
}

// Declarations returns the successful declarations in row order.
func (b *Batch) Declarations() []string {
	decls := make([]string, 0, len(b.Results))
	for _, r := range b.Results {
		if r.OK() {
			decls = append(decls, r.Declaration)
		}
	}
	return decls
}

// Failed returns the variable names of rows that did not resolve, in row order.
func (b *Batch) Failed() []string {
	var names []string
	for _, r := range b.Results {
		if !r.OK() {
			names = append(names, r.Row.VariableName)
		}
	}
	return names
}

// Resolve turns a single row into a CSS custom property declaration.
// The scale token is trimmed before lookup.
func Resolve(row Row, s scale.Scale) (string, error) {
	token := strings.TrimSpace(row.ScaleToken)
	if row.VariableName == "" || token == "" {
		return "", fmt.Errorf("line %d: %w", row.Line, ErrMissingField)
	}

	value, ok := s.Lookup(token)
	if !ok {
		return "", fmt.Errorf("%w: %q for variable %q", ErrTokenNotFound, token, row.VariableName)
	}

	switch row.Method {
	case MethodHex:
		return declaration(row.VariableName, value), nil
	case MethodRgba:
		rgba, err := color.Resolve(value, row.Alpha)
		if err != nil {
			return "", fmt.Errorf("rgba for variable %q: %w", row.VariableName, err)
		}
		return declaration(row.VariableName, rgba), nil
	case MethodNone, MethodSkip, MethodShadow, MethodUnsupported:
		return "", fmt.Errorf("%w: %q for variable %q", ErrUnsupportedMethod, row.RawMethod, row.VariableName)
	default:
		return "", fmt.Errorf("%w: %v for variable %q", ErrUnsupportedMethod, row.Method, row.VariableName)
	}
}

// ResolveAll resolves every row that is not excluded by its method. One row's
// failure never stops the others.
func ResolveAll(rows []Row, s scale.Scale) *Batch {
	b := &Batch{Results: make([]Result, 0, len(rows))}
	for _, row := range rows {
		if row.Method.Excluded() {
			b.Skipped = append(b.Skipped, row)
			continue
		}

		decl, err := Resolve(row, s)
		b.Results = append(b.Results, Result{Row: row, Declaration: decl, Err: err})
	}
	return b
}

func declaration(name, value string) string {
	return name + ": " + value + ";"
}
