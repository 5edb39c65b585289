package formatter

import (
	"strings"
)

// DefaultMarker separates the upstream stylesheets from the generated overrides.
const DefaultMarker = "/* Primo Theme Override */"

// ToStylesheet assembles the final stylesheet: the upstream CSS, a newline, the
// marker comment and a :root block holding the declarations in order.
func ToStylesheet(upstreamCSS, marker string, declarations []string) string {
	if marker == "" {
		marker = DefaultMarker
	}

	var sb strings.Builder
	sb.WriteString(upstreamCSS)
	sb.WriteString("\n")
	sb.WriteString(marker)
	sb.WriteString("\n")
	sb.WriteString(RootBlock(declarations))
	return sb.String()
}

// RootBlock renders declarations, one per line, inside a ":root { }" rule.
func RootBlock(declarations []string) string {
	return ":root {\n" + strings.Join(declarations, "\n") + "\n}"
}
