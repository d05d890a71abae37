// Package baseline loads the list of reviewed restricted dependencies and
// reconciles scanner findings against it.
package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dashcheck/internal/model"
)

// FormatError reports a baseline file whose top-level shape is not a list of
// identifiers or an object keyed by identifier.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return "invalid exclusions format: " + e.Reason
	}
	return fmt.Sprintf("invalid exclusions format in %s: %s", e.Path, e.Reason)
}

// Load reads and decodes the baseline at path.
func Load(path string) (model.Exclusions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	excl, err := Decode(data)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return excl, nil
}

// Decode parses a baseline document. An array yields its elements as keys
// with nil annotations; an object yields its entries. Array elements must be
// strings.
func Decode(data []byte) (model.Exclusions, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	excl := model.Exclusions{}
	switch v := doc.(type) {
	case []any:
		for i, item := range v {
			id, ok := item.(string)
			if !ok {
				return nil, &FormatError{Reason: fmt.Sprintf("element %d is %s, expected a string", i, jsonType(item))}
			}
			excl[id] = nil
		}
	case map[string]any:
		for id, note := range v {
			excl[id] = note
		}
	default:
		return nil, &FormatError{Reason: fmt.Sprintf("expected an array or object, got %s", jsonType(doc))}
	}
	return excl, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	}
	return fmt.Sprintf("%T", v)
}
