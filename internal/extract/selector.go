// Package extract contains the parse collaborators shared by the extraction
// adapters: CSS-selector lookups over an HTML document and key-path walking
// over embedded JSON-LD payloads.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/linkmeta/internal/domain"
)

// Parse turns a fetched body into a queryable document.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// RequireAttr reads an attribute from the first element matching selector and
// fails with a MissingFieldError when the element or attribute is absent.
// Adapters use this for every field without a declared fallback.
func RequireAttr(doc *goquery.Document, host domain.Host, selector, attr string) (string, error) {
	val, ok := doc.Find(selector).First().Attr(attr)
	if !ok {
		return "", &domain.MissingFieldError{Host: host, Field: fmt.Sprintf("%s[%s]", selector, attr)}
	}
	return val, nil
}

// OptionalAttr reads an attribute from the first element matching selector.
// The second return value reports whether the element and attribute exist;
// an empty attribute value also counts as absent.
func OptionalAttr(doc *goquery.Document, selector, attr string) (string, bool) {
	val, ok := doc.Find(selector).First().Attr(attr)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// JoinAttrs collects the attribute from every element matching selector and
// joins the values with ", " in document order.
func JoinAttrs(doc *goquery.Document, selector, attr string) string {
	var vals []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if val, ok := s.Attr(attr); ok {
			vals = append(vals, val)
		}
	})
	return strings.Join(vals, ", ")
}
