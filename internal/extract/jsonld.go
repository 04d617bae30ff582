package extract

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
)

// JSONLD decodes the first application/ld+json block of the document into a
// generic value tree. The second return value is false when no block exists
// or its content is not valid JSON.
func JSONLD(doc *goquery.Document) (any, bool) {
	text := doc.Find("script[type='application/ld+json']").First().Text()
	if text == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// Key walks a fixed key path through nested JSON objects. A missing key at
// any step reports absence; absence is distinct from a value being null.
func Key(v any, path ...string) (any, bool) {
	for _, key := range path {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// KeyString walks a key path and reports the value only when it is a
// non-empty string.
func KeyString(v any, path ...string) (string, bool) {
	val, ok := Key(v, path...)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// GraphNode unwraps a JSON-LD payload that nests its data in a @graph array,
// returning the first or last element depending on last. Payloads without a
// @graph wrapper are returned as they are.
func GraphNode(v any, last bool) (any, bool) {
	graph, ok := Key(v, "@graph")
	if !ok {
		return v, true
	}
	arr, ok := graph.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	if last {
		return arr[len(arr)-1], true
	}
	return arr[0], true
}

// AuthorName reads the author name from a JSON-LD node. Sources embed the
// author either as an object or as a list of objects; in the list case the
// first author wins.
func AuthorName(node any) (string, bool) {
	author, ok := Key(node, "author")
	if !ok {
		return "", false
	}

	if list, isList := author.([]any); isList {
		if len(list) == 0 {
			return "", false
		}
		author = list[0]
	}

	return KeyString(author, "name")
}

// ComposeChannel applies the uniform author/publisher composition rule:
// "<author> für <publisher>" when an author is present, the bare publisher
// name otherwise.
func ComposeChannel(author, publisher string) string {
	if author == "" {
		return publisher
	}
	return author + " für " + publisher
}

// YearOf slices the leading four characters off a date representation.
// This is a string slice, not a date parse: anything starting with a
// four-digit year works, and unusual platform data passes through unchanged.
func YearOf(date string) (string, bool) {
	if len(date) < 4 {
		return "", false
	}
	return date[:4], true
}
