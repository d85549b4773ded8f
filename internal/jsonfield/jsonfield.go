// Package jsonfield reads a single value out of a JSON document by
// dotted path, e.g. service.region.
package jsonfield

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ReadFile reads the JSON document at path and returns the string value
// at the dotted field path. Missing file, malformed JSON, an absent
// field, and a non-string value are all errors.
func ReadFile(path, field string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Read(data, field)
}

// Read returns the string value at the dotted field path in doc.
func Read(doc []byte, field string) (string, error) {
	if !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("malformed JSON document")
	}

	res := gjson.GetBytes(doc, field)
	if !res.Exists() {
		return "", fmt.Errorf("field %q not found", field)
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("field %q is not a string (got %s)", field, res.Type)
	}
	return res.String(), nil
}
