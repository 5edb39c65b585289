package scale

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Scale maps design-token names (e.g. "gray-1") to color values.
type Scale map[string]string

// Load decodes a flat JSON object of token names to color strings.
func Load(r io.Reader) (Scale, error) {
	var s Scale
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scale: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("failed to decode scale: document is not an object")
	}
	return s, nil
}

// LoadFile reads and decodes the scale mapping stored at path.
func LoadFile(path string) (Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scale file %q: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Lookup returns the value of token. Tokens mapped to an empty string are
// reported as missing.
func (s Scale) Lookup(token string) (string, bool) {
	v, ok := s[token]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Tokens returns the token names in sorted order.
func (s Scale) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for k := range s {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return tokens
}
