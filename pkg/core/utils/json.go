package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// nonFinite are the bare tokens Python's json module writes for float NaN and
// infinities. encoding/json rejects them.
var nonFinite = [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}

// SanitizeNonFinite rewrites bare NaN, Infinity and -Infinity tokens outside
// string literals to null. Input without such tokens is returned unchanged.
func SanitizeNonFinite(data []byte) []byte {
	var out []byte
	inString, escaped := false, false
	last := 0

	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			continue
		}
		if c != 'N' && c != 'I' && c != '-' {
			continue
		}
		for _, tok := range nonFinite {
			if !bytes.HasPrefix(data[i:], tok) || !isBoundary(data, i+len(tok)) {
				continue
			}
			out = append(out, data[last:i]...)
			out = append(out, "null"...)
			i += len(tok) - 1
			last = i + 1
			break
		}
	}

	if out == nil {
		return data
	}
	return append(out, data[last:]...)
}

func isBoundary(data []byte, i int) bool {
	if i >= len(data) {
		return true
	}
	switch data[i] {
	case ',', ']', '}', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// DecodeStrict sanitizes non-finite tokens and decodes with encoding/json.
// Syntax errors are returned exactly as encoding/json reports them.
func DecodeStrict(data []byte, v interface{}) error {
	return json.Unmarshal(SanitizeNonFinite(data), v)
}

// RepairJSON attempts to fix common JSON errors in hand-edited files.
// Uses github.com/RealAlexandreAI/json-repair for intelligent repair.
// Supported repairs:
// - Missing quotes around keys
// - Single quotes instead of double quotes
// - Unclosed arrays/objects
// - Trailing commas
// - Comments in JSON
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (Hjson) and returns standard JSON.
// Hjson supports:
// - Comments (# // /* */)
// - Unquoted keys
// - Unquoted strings
// - Optional commas
// - Multiline strings
func ParseHJSON(hjsonData string) (string, error) {
	var result interface{}
	err := hjson.Unmarshal([]byte(hjsonData), &result)
	if err != nil {
		return "", fmt.Errorf("HJSON_PARSE_ERROR: %v", err)
	}

	// Convert to standard JSON
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("JSON_MARSHAL_ERROR: %v", err)
	}

	return string(jsonBytes), nil
}

// SmartParse tries multiple parsing strategies to decode input into v.
// Order of attempts:
// 1. Strict JSON (after non-finite cleanup)
// 2. JSON repair, unless the repair folded lines into string values
// 3. Hjson parse (most lenient, after non-finite cleanup)
//
// When every strategy fails the strict error is returned, so callers see the
// real syntax problem rather than the last fallback's complaint.
func SmartParse(input []byte, v interface{}) error {
	sanitized := SanitizeNonFinite(input)
	strictErr := json.Unmarshal(sanitized, v)
	if strictErr == nil {
		return nil
	}

	// Try 2: JSON Repair
	repaired, err := RepairJSON(string(sanitized))
	if err == nil && !hasMultilineString([]byte(repaired)) {
		resetTarget(v)
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	// Try 3: Hjson (most lenient)
	hjsonResult, err := ParseHJSON(string(sanitized))
	if err == nil {
		resetTarget(v)
		if err := json.Unmarshal([]byte(hjsonResult), v); err == nil {
			return nil
		}
	}

	return strictErr
}

// resetTarget zeroes what v points to so a failed attempt leaves no fields
// behind for the next one.
func resetTarget(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
	}
}

// hasMultilineString reports whether any string in doc spans lines. json-repair
// turns unquoted multi-line objects into one string holding the remaining
// "key: value" lines; dataset strings never contain newlines.
func hasMultilineString(doc []byte) bool {
	var parsed interface{}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return false
	}
	return walkStrings(parsed, func(s string) bool {
		return strings.ContainsAny(s, "\n\r")
	})
}

func walkStrings(node interface{}, match func(string) bool) bool {
	switch n := node.(type) {
	case string:
		return match(n)
	case []interface{}:
		for _, item := range n {
			if walkStrings(item, match) {
				return true
			}
		}
	case map[string]interface{}:
		for key, item := range n {
			if match(key) || walkStrings(item, match) {
				return true
			}
		}
	}
	return false
}
