/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/settingstore/errors"
)

// DecodeFunc decodes a raw asset payload into out, which is a pointer to a settingmodels.Document.
type DecodeFunc func(data []byte, out any) error

// formatRegistry holds the mapping from a file extension (like ".yaml") to its decode function.
var (
	formatRegistry = make(map[string]DecodeFunc)
	formatOrder    []string
)

func init() {
	RegisterFormat(".yaml", decodeYAML)
	RegisterFormat(".yml", decodeYAML)
	RegisterFormat(".json", decodeJSON)
}

// RegisterFormat registers a decode function for a file extension.
// Extensions are matched case-insensitively and must include the leading dot.
// If a decoder is already registered for the extension, it panics to prevent accidental overrides.
func RegisterFormat(ext string, fn DecodeFunc) {
	ext = strings.ToLower(ext)
	if _, exists := formatRegistry[ext]; exists {
		panic(fmt.Sprintf("format registry: decoder for %q already registered", ext))
	}
	formatRegistry[ext] = fn
	formatOrder = append(formatOrder, ext)
}

// GetDecodeFunc returns the registered decode function for the given extension.
// If no function is registered, it returns an error matching errors.ErrUnsupportedFormat.
func GetDecodeFunc(ext string) (DecodeFunc, error) {
	fn, ok := formatRegistry[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("format registry: %w", errors.NewFormatError("", ext))
	}
	return fn, nil
}

// Formats returns the registered extensions in registration order.
// Stores that probe for an asset try them in this order.
func Formats() []string {
	out := make([]string, len(formatOrder))
	copy(out, formatOrder)
	return out
}

func decodeYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}
