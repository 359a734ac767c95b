/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"regexp"
	"sync"
)

// IndexMapRegistry is a registry for record types and their DynamoDB key templates.

var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	mu               sync.RWMutex
)

// DefaultIndexMap lays every asset out as a single partition: one header item and
// one item per record slot, ordered by sequence number.
var DefaultIndexMap = map[string]string{
	"PK":       "SETTING#{Path}",
	"SK":       "RECORD#{Seq}",
	"HeaderSK": "HEADER",
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// RegisterIndexMap associates a record type T with a given DynamoDB index map (PK, SK, HeaderSK).
func RegisterIndexMap[T any](idxMap map[string]string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	indexMapRegistry[t] = idxMap
}

// GetIndexMap retrieves the indexMap for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	var zero T
	return LookupIndexMap(reflect.TypeOf(zero))
}

// LookupIndexMap retrieves the indexMap for a reflected record type, if any.
func LookupIndexMap(t reflect.Type) (map[string]string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}

// IndexMapFor returns the index map registered for t, falling back to DefaultIndexMap.
// Templates missing from a registered map are taken from DefaultIndexMap.
func IndexMapFor(t reflect.Type) map[string]string {
	res := make(map[string]string, len(DefaultIndexMap))
	for k, v := range DefaultIndexMap {
		res[k] = v
	}
	if t == nil {
		return res
	}
	if m, ok := LookupIndexMap(t); ok {
		for k, v := range m {
			res[k] = v
		}
	}
	return res
}

// Expand replaces {Name} macros in template with values[Name].
// Unknown macros expand to the empty string.
func Expand(template string, values map[string]string) string {
	return macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		return values[macro[1:len(macro)-1]]
	})
}
