package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrMissingColor is returned when there is no color value to resolve.
	ErrMissingColor = errors.New("color value is empty")
	// ErrInvalidColor is returned when the color value is not a recognized hex form.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidAlpha is returned when the alpha is not a number in [0, 1].
	ErrInvalidAlpha = errors.New("invalid alpha")
)

// Color is a parsed color with its alpha channel.
type Color struct {
	colorful.Color
	Alpha float64
}

// Parse parses a hex color in one of the #rgb, #rgba, #rrggbb or #rrggbbaa forms.
// The leading '#' is optional and letter case is ignored.
func Parse(value string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return Color{}, ErrMissingColor
	}
	s = strings.TrimPrefix(s, "#")

	for _, r := range s {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
	}

	alpha := 1.0
	switch len(s) {
	case 3, 6:
	case 4:
		alpha = float64(hexByte(s[3:]+s[3:])) / 255
		s = s[:3]
	case 8:
		alpha = float64(hexByte(s[6:])) / 255
		s = s[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
	}

	return Color{Color: c, Alpha: alpha}, nil
}

// Resolve parses value and returns its CSS functional form. A non-empty alpha
// replaces the color's own alpha channel. The result is "rgb(r, g, b)" when the
// effective alpha is 1 and "rgba(r, g, b, a)" otherwise.
func Resolve(value, alpha string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}

	if alpha = strings.TrimSpace(alpha); alpha != "" {
		a, err := ParseAlpha(alpha)
		if err != nil {
			return "", err
		}
		c.Alpha = a
	}

	return c.RGBString(), nil
}

// ParseAlpha parses a decimal alpha value in the range [0, 1].
func ParseAlpha(s string) (float64, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(a) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAlpha, s)
	}
	if a < 0 || a > 1 {
		return 0, fmt.Errorf("%w: %q is outside [0, 1]", ErrInvalidAlpha, s)
	}
	return a, nil
}

// RGBString formats c as rgb() or rgba(), rounding alpha to two decimals.
func (c Color) RGBString() string {
	r, g, b := c.RGB255()
	a := math.Round(c.Alpha*100) / 100
	if a == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

// Hex returns the normalized lowercase #rrggbb form of value.
func Hex(value string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return c.Color.Hex(), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

// hexByte decodes a two-digit, already validated hex string.
func hexByte(s string) uint8 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return uint8(n)
}
