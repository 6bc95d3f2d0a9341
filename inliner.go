package inliner

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/css"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned if an operation needs a document tree, but none
// has been supplied.
var ErrNoDocument = errors.New("no document to work on")

// ErrNotRead is returned if an Inliner is asked to inline or render before a
// document has been read.
var ErrNotRead = errors.New("no document has been read")

// Warning is a recoverable problem of an inlining pass, see css.Warning.
type Warning = css.Warning

// Options configure an Inliner. The zero value inlines with defaults.
type Options struct {
	StripAttrs          bool `yaml:"strip_attrs"`          // remove id and class attributes after inlining
	LeaveStyle          bool `yaml:"leave_style"`          // do not remove <style> blocks when reading
	PreserveUninlinable bool `yaml:"preserve_uninlinable"` // keep :hover, @media etc. in a <style> block
}

// Inliner is a session to inline the stylesheets of a single document.
type Inliner struct {
	mx         sync.Mutex
	opts       Options
	doc        *html.Node
	stylesheet string
	warnings   []Warning
}

// New creates an Inliner.
func New(opts Options) *Inliner {
	return &Inliner{opts: opts}
}

// Read parses an HTML document and extracts its stylesheet.
func (in *Inliner) Read(r io.Reader) error {
	doc, err := dom.Parse(r)
	if err != nil {
		return err
	}
	return in.ReadTree(doc)
}

// ReadHTML parses an HTML document from a string and extracts its stylesheet.
func (in *Inliner) ReadHTML(s string) error {
	return in.Read(strings.NewReader(s))
}

// ReadTree takes over a parsed document and extracts its stylesheet.
// Unless option LeaveStyle is set, the `<style>` blocks are removed from doc.
func (in *Inliner) ReadTree(doc *html.Node) error {
	if doc == nil {
		return ErrNoDocument
	}
	in.mx.Lock()
	defer in.mx.Unlock()
	var sheet string
	var err error
	if in.opts.LeaveStyle {
		sheet, err = css.ReadStylesheet(doc)
	} else {
		sheet, err = css.ExtractStylesheet(doc)
	}
	if err != nil {
		return err
	}
	in.doc, in.stylesheet, in.warnings = doc, sheet, nil
	tracer().Debugf("read document with stylesheet of %d bytes", len(sheet))
	return nil
}

// Document returns the document tree of the session, or nil.
func (in *Inliner) Document() *html.Node {
	in.mx.Lock()
	defer in.mx.Unlock()
	return in.doc
}

// Stylesheet returns the stylesheet text extracted from the document.
func (in *Inliner) Stylesheet() string {
	in.mx.Lock()
	defer in.mx.Unlock()
	return in.stylesheet
}

// InlineDocument inlines the stylesheet read from the document into the
// document. It may be called more than once; further calls do not change
// the result.
func (in *Inliner) InlineDocument() error {
	in.mx.Lock()
	defer in.mx.Unlock()
	if in.doc == nil {
		return ErrNotRead
	}
	return in.inline(in.doc, in.stylesheet)
}

// Inline inlines CSS source text into a document tree, using the options of
// the Inliner. The tree is modified in place. Warnings of earlier calls are
// cleared.
//
// Inline fails if the stylesheet cannot be parsed or an inline style already
// present in the document is malformed. In the latter case the styles of
// the tree may be partially updated.
func (in *Inliner) Inline(doc *html.Node, stylesheet string) error {
	in.mx.Lock()
	defer in.mx.Unlock()
	return in.inline(doc, stylesheet)
}

func (in *Inliner) inline(doc *html.Node, stylesheet string) error {
	in.warnings = nil
	if doc == nil {
		return ErrNoDocument
	}
	sheet, err := douceuradapter.Parse(stylesheet)
	if err != nil {
		return err
	}
	pass, err := css.Inline(doc, sheet, css.Options{
		StripAttrs:          in.opts.StripAttrs,
		PreserveUninlinable: in.opts.PreserveUninlinable,
	})
	in.warnings = pass.Warnings()
	if err != nil {
		return fmt.Errorf("inlining failed: %w", err)
	}
	tracer().Infof("inlined styles for %d elements, %d warnings",
		len(pass.Elements()), len(in.warnings))
	return nil
}

// Warnings returns the warnings of the most recent call to Inline or
// InlineDocument.
func (in *Inliner) Warnings() []Warning {
	in.mx.Lock()
	defer in.mx.Unlock()
	w := make([]Warning, len(in.warnings))
	copy(w, in.warnings)
	return w
}

// Render writes the document as HTML.
func (in *Inliner) Render(w io.Writer) error {
	in.mx.Lock()
	defer in.mx.Unlock()
	if in.doc == nil {
		return ErrNotRead
	}
	return dom.Render(w, in.doc)
}

// HTML returns the document as HTML text.
func (in *Inliner) HTML() (string, error) {
	var b strings.Builder
	if err := in.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// --- Stateless operations --------------------------------------------------

// InlineString is a convenience function: it reads an HTML document, inlines
// its stylesheet and returns the resulting HTML.
func InlineString(htmlText string, opts Options) (string, error) {
	in := New(opts)
	if err := in.ReadHTML(htmlText); err != nil {
		return "", err
	}
	if err := in.InlineDocument(); err != nil {
		return "", err
	}
	return in.HTML()
}

// ExtractStylesheet removes the screen `<style>` blocks of a document tree and
// returns their text.
func ExtractStylesheet(doc *html.Node) (string, error) {
	if doc == nil {
		return "", ErrNoDocument
	}
	return css.ExtractStylesheet(doc)
}

// Specificity returns the weight of a selector (see css.Specificity).
func Specificity(selector string) int {
	return css.Specificity(selector)
}

// QueryMatches returns the elements of a document matching a selector, in
// document order.
func QueryMatches(doc *html.Node, selector string) ([]*html.Node, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	return dom.Query(doc, selector)
}
