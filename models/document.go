// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Document is a decoded JSON object returned by the API.
//
// Response schemas (message data models, rule results, organisations) are
// owned by the server, so the client keeps them as generic objects and reads
// only the few fields it needs through the typed accessors below. Numbers are
// decoded as [json.Number] to keep identifiers and counters exact.
type Document map[string]any

// String returns the value at key as a string. Numbers and booleans are
// formatted; missing or null values yield "".
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Bool returns the value at key and whether it was a boolean.
func (d Document) Bool(key string) (value bool, ok bool) {
	value, ok = d[key].(bool)
	return value, ok
}

// Int returns the value at key as an int, or 0 when it is not numeric.
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, _ := v.Float64()
			return int(f)
		}
		return int(n)
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Has reports whether key is present and not null.
func (d Document) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// Document returns the nested object at key, or nil.
func (d Document) Document(key string) Document {
	return AsDocument(d[key])
}

// Documents returns the nested list at key. Items that are not objects are
// skipped.
func (d Document) Documents(key string) []Document {
	list, ok := d[key].([]any)
	if !ok {
		if docs, ok := d[key].([]Document); ok {
			return docs
		}
		return nil
	}

	docs := make([]Document, 0, len(list))
	for _, item := range list {
		if doc := AsDocument(item); doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Keys returns the document keys in lexical order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsDocument converts a decoded JSON value into a [Document] when it is an
// object and returns nil otherwise.
func AsDocument(v any) Document {
	switch doc := v.(type) {
	case Document:
		return doc
	case map[string]any:
		return doc
	default:
		return nil
	}
}

// SortDocumentsBy orders docs by the string value at key. Documents without
// the key sort first, matching the API's unnamed-results-first convention.
func SortDocumentsBy(docs []Document, key string) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].String(key) < docs[j].String(key)
	})
}
