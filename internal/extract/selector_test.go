package extract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
)

const samplePage = `<html><head>
<meta property="og:title" content="A Title"/>
<meta property="og:url" content="/v/talk"/>
<meta property="author" content="alice"/>
<meta property="author" content="bob"/>
<meta property="empty" content=""/>
<link rel="canonical" href="https://example.com/a"/>
</head><body></body></html>`

func TestRequireAttr(t *testing.T) {
	doc, err := extract.Parse([]byte(samplePage))
	require.NoError(t, err)

	val, err := extract.RequireAttr(doc, domain.HostMediaCCC, "meta[property='og:title']", "content")
	require.NoError(t, err)
	assert.Equal(t, "A Title", val)
}

func TestRequireAttr_Missing(t *testing.T) {
	doc, err := extract.Parse([]byte(samplePage))
	require.NoError(t, err)

	_, err = extract.RequireAttr(doc, domain.HostTwitch, "meta[property='og:video']", "content")
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, domain.HostTwitch, missing.Host)
	assert.Equal(t, "meta[property='og:video'][content]", missing.Field)
}

func TestOptionalAttr(t *testing.T) {
	doc, err := extract.Parse([]byte(samplePage))
	require.NoError(t, err)

	val, ok := extract.OptionalAttr(doc, "link[rel='canonical']", "href")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", val)

	_, ok = extract.OptionalAttr(doc, "meta[property='nope']", "content")
	assert.False(t, ok)

	// an empty attribute value counts as absent
	_, ok = extract.OptionalAttr(doc, "meta[property='empty']", "content")
	assert.False(t, ok)
}

func TestJoinAttrs(t *testing.T) {
	doc, err := extract.Parse([]byte(samplePage))
	require.NoError(t, err)

	assert.Equal(t, "alice, bob", extract.JoinAttrs(doc, "meta[property='author']", "content"))
	assert.Equal(t, "", extract.JoinAttrs(doc, "meta[property='missing']", "content"))
}
