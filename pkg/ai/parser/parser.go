// Package parser pulls the structured JSON payload out of a free-text
// model reply and maps every failure to the uniform error messages the
// API surfaces to the user.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error messages are part of the API contract; clients match on them.
var (
	ErrEmptyResponse = errors.New("Empty response from the model")
	ErrNoJSONObject  = errors.New("No JSON object found in model response")
)

// ParseError wraps a JSON decode failure with the parser's message embedded.
func ParseError(err error) error {
	return fmt.Errorf("JSON parsing error: %v", err)
}

// Exception wraps any other failure during a model call.
func Exception(err error) error {
	return fmt.Errorf("Exception occurred: %v", err)
}

// ExtractObject unmarshals the JSON object embedded in reply into v.
// Models often preface the object with prose ("Sure! {...}"), so the scan
// starts at the first '{' and everything before it is ignored. Anything
// after the object still has to be valid JSON input, matching a strict
// decode of the remainder.
func ExtractObject(reply string, v any) error {
	if strings.TrimSpace(reply) == "" {
		return ErrEmptyResponse
	}
	start := strings.Index(reply, "{")
	if start == -1 {
		return ErrNoJSONObject
	}
	if err := json.Unmarshal([]byte(reply[start:]), v); err != nil {
		return ParseError(err)
	}
	return nil
}
