// Package jsonblob extracts JSON literals embedded in arbitrary text.
//
// Product pages inline review data as JSON objects inside script tags and
// data attributes; none of it is addressable by selector, so the scanner
// sweeps the raw body instead of the parsed markup.
package jsonblob

import (
	"encoding/json"
	"strings"
)

// Scan walks the input character by character. At every position opening an
// object or array it attempts a balanced decode; on success the decoded
// value is recorded and the scan resumes past the consumed substring, on
// failure the scan advances a single character. Inputs with zero, one, or
// many independent JSON literals interleaved with markup are all fine.
func Scan(text string) []any {
	var values []any
	for i := 0; i < len(text); {
		if text[i] != '{' && text[i] != '[' {
			i++
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var v any
		if err := dec.Decode(&v); err != nil {
			i++
			continue
		}
		values = append(values, v)
		i += int(dec.InputOffset())
	}
	return values
}
