package neatjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Dumps renders v with the canonical save-to-disk configuration: sorted keys,
// non-finite numbers rejected, defaults otherwise. Use Format for
// caller-chosen options.
func Dumps(v Value) (string, error) {
	opts := *DefaultOptions
	opts.SortKeys = true
	opts.AllowNaN = false
	out, err := Format(v, &opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Dump writes the canonical rendering of v to path. The document is formatted
// completely before the file is touched, so a formatting failure never
// truncates or corrupts a pre-existing file at path.
func Dump(v Value, path string) error {
	text, err := Dumps(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Load reads the file at path and parses it as a single JSON document.
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	v, err := Parse(data)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Parse decodes one JSON document into a Value. Numbers are decoded via
// json.Number to avoid float64 round-trip surprises in the error messages.
// Anything but trailing whitespace after the document is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("trailing data after JSON document")
	}
	return FromAny(raw)
}
