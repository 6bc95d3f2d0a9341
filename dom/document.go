package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNilNode is returned for operations which need a tree, but are called
// with a nil node.
var ErrNilNode = errors.New("no document tree")

// Parse builds a document tree from HTML text. Comment nodes are kept.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return doc, nil
}

// ParseString builds a document tree from a string of HTML text.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// Render writes a document tree as HTML text. Attributes, including the
// inline styles created by the inliner, are written as they are set on
// the elements; escaping is done by package html.
func Render(w io.Writer, doc *html.Node) error {
	if doc == nil {
		return ErrNilNode
	}
	return html.Render(w, doc)
}

// RenderString renders a document tree to a string.
func RenderString(doc *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
