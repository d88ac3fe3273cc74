package output

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/w3rdev/w3r/pkg/jsonpath"
)

// ProcessBody runs a response body through the post-processing pipeline.
//
// A body that is not valid JSON passes through byte-identical, regardless
// of the filter and pretty flags. A JSON body is optionally narrowed by a
// path filter and re-serialized: indented when prettyJSON is set, compact
// single-line otherwise. Key order follows the parsed document.
func ProcessBody(body []byte, filter string, prettyJSON bool) []byte {
	if !gjson.ValidBytes(body) {
		return body
	}

	value := gjson.ParseBytes(body)
	if filter != "" {
		value = jsonpath.Filter(value, filter)
	}

	raw := []byte(value.Raw)
	if prettyJSON {
		return bytes.TrimRight(pretty.Pretty(raw), "\n")
	}
	return pretty.Ugly(raw)
}
