package variables

import "strings"

// Method selects how a row's scale value becomes a declaration value.
type Method int

const (
	// MethodNone marks a row with an empty method column.
	MethodNone Method = iota
	// MethodHex emits the scale value verbatim.
	MethodHex
	// MethodRgba emits the scale value as rgb()/rgba() with the row's alpha.
	MethodRgba
	// MethodSkip marks a row that is deliberately not generated.
	MethodSkip
	// MethodShadow marks shadow rows, which are maintained by hand.
	MethodShadow
	// MethodUnsupported is any other method value.
	MethodUnsupported
)

// ParseMethod maps a method column value to a Method, ignoring case and
// surrounding whitespace.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MethodNone
	case "hex":
		return MethodHex
	case "rgba":
		return MethodRgba
	case "skip":
		return MethodSkip
	case "shadow":
		return MethodShadow
	default:
		return MethodUnsupported
	}
}

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodHex:
		return "hex"
	case MethodRgba:
		return "rgba"
	case MethodSkip:
		return "skip"
	case MethodShadow:
		return "shadow"
	default:
		return "unsupported"
	}
}

// Excluded reports whether rows with this method are filtered out before
// resolution.
func (m Method) Excluded() bool {
	return m == MethodNone || m == MethodSkip || m == MethodShadow
}
