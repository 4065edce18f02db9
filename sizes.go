package autogrid

import (
	"math"
	"strconv"
	"strings"
)

// sizeSeparator separates the entries of a size list such as "100,*,2*,Auto".
const sizeSeparator = ","

// ParseSizes parses a comma separated size list into size policies, one per
// entry and in the same order.
//
// Each entry is trimmed and read as:
//   - a number: a fixed size ("100")
//   - a number followed by '*': a star weight ("2*"); a missing or invalid
//     number before the '*' means weight 1 ("*")
//   - anything else: Auto
//
// Numbers must be finite: "NaN" and "Inf" read as Auto, or weight 1 before
// a '*'.
//
// Malformed entries never fail. An empty string yields nil, which the size
// list setters treat as "leave the slots alone".
func ParseSizes(text string) []Value {
	if text == "" {
		return nil
	}

	tokens := strings.Split(text, sizeSeparator)
	sizes := make([]Value, 0, len(tokens))
	for _, token := range tokens {
		sizes = append(sizes, ParseSize(token))
	}
	return sizes
}

// ParseSize parses a single size list entry. See ParseSizes.
func ParseSize(token string) Value {
	token = strings.TrimSpace(token)

	if weight, ok := strings.CutSuffix(token, "*"); ok {
		w, ok := parseAmount(weight)
		if !ok {
			return Star(1)
		}
		return Star(w)
	}

	if px, ok := parseAmount(token); ok {
		return Fixed(px)
	}
	return Auto()
}

// parseAmount parses a finite number. NaN and infinities are rejected.
func parseAmount(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatSizes formats size policies back into a size list.
func FormatSizes(sizes []Value) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = size.String()
	}
	return strings.Join(parts, sizeSeparator)
}
