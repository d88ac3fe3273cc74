// Package jsonpath implements the dot/bracket path language used to pull a
// sub-value out of a JSON document.
//
// A path is either "." (the whole document) or a dot-separated chain of
// segments. Each segment is a field name ("user"), a field name followed by
// an array index ("items[2]"), or a bare index ("[0]") applied directly to
// the current value. Lookups never fail: a missing field, a lookup on a
// non-object, or an out-of-range index all resolve to JSON null, and every
// segment applied to null resolves to null again.
package jsonpath

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Null is the JSON null value produced for any segment that cannot be
// resolved.
var Null = gjson.Result{Type: gjson.Null, Raw: "null"}

// Filter applies a path expression to a parsed JSON value and returns the
// extracted sub-value. The root path "." (or an empty path) returns the
// value unchanged.
func Filter(value gjson.Result, path string) gjson.Result {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return value
	}

	path = strings.TrimPrefix(path, ".")
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}
		value = applySegment(value, segment)
	}
	return value
}

func applySegment(value gjson.Result, segment string) gjson.Result {
	if open := strings.IndexByte(segment, '['); open >= 0 {
		rest := segment[open+1:]
		if end := strings.IndexByte(rest, ']'); end >= 0 {
			if idx, err := strconv.Atoi(rest[:end]); err == nil && idx >= 0 {
				v := value
				if name := segment[:open]; name != "" {
					v = field(v, name)
				}
				return index(v, idx)
			}
		}
	}
	// No bracket, or malformed bracket syntax: the whole segment is a
	// field name.
	return field(value, segment)
}

func field(value gjson.Result, name string) gjson.Result {
	if !value.IsObject() {
		return Null
	}
	if v, ok := value.Map()[name]; ok {
		return v
	}
	return Null
}

func index(value gjson.Result, i int) gjson.Result {
	if !value.IsArray() {
		return Null
	}
	items := value.Array()
	if i >= len(items) {
		return Null
	}
	return items[i]
}
