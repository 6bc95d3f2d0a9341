package css_test

import (
	"errors"
	"testing"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediaDoc = `<html><head>
<style>p { color: red }</style>
<style media="print">p { color: black }</style>
</head><body>
<style media="Screen, print"><!-- .x { margin: 0 } --></style>
<p>Hello</p>
</body></html>`

func TestExtractStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cascade")
	defer teardown()
	//
	doc, err := dom.ParseString(mediaDoc)
	require.NoError(t, err)
	sheet, err := css.ExtractStylesheet(doc)
	require.NoError(t, err)
	assert.Equal(t, "p { color: red }\n .x { margin: 0 } ", sheet)
	styles, err := dom.Query(doc, "style")
	require.NoError(t, err)
	if len(styles) != 1 {
		t.Fatalf("expected 1 <style> to remain in the document, have %d", len(styles))
	}
	media, _ := dom.Attr(styles[0], "media")
	assert.Equal(t, "print", media)
}

func TestReadStylesheetLeavesTree(t *testing.T) {
	doc, err := dom.ParseString(mediaDoc)
	require.NoError(t, err)
	sheet, err := css.ReadStylesheet(doc)
	require.NoError(t, err)
	assert.Contains(t, sheet, ".x { margin: 0 }")
	assert.NotContains(t, sheet, "<!--")
	styles, _ := dom.Query(doc, "style")
	assert.Len(t, styles, 3)
}

func TestExtractWithoutTree(t *testing.T) {
	_, err := css.ExtractStylesheet(nil)
	if !errors.Is(err, css.ErrNoTree) {
		t.Errorf("expected ErrNoTree, have %v", err)
	}
}

func TestExtractFromComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cascade")
	defer teardown()
	//
	for _, tc := range []struct {
		doc, sheet, rest string
	}{
		{ // commented out block
			`<html><head><!-- <style>p { color: red }</style> --></head><body><p>x</p></body></html>`,
			"p { color: red }",
			"",
		},
		{ // conditional comment for Outlook
			`<html><head><!--[if mso]><style>td { padding: 0 }</style><![endif]--></head><body></body></html>`,
			"td { padding: 0 }",
			"<!--[if mso]><![endif]-->",
		},
		{ // stylesheet order, print media stays in the comment
			`<html><head><style>a { color: blue }</style>` +
				`<!-- <style media="print">p { color: black }</style><style>p { color: red }</style> -->` +
				`</head><body></body></html>`,
			"a { color: blue }\np { color: red }",
			`<!-- <style media="print">p { color: black }</style> -->`,
		},
	} {
		doc, err := dom.ParseString(tc.doc)
		require.NoError(t, err)
		sheet, err := css.ReadStylesheet(doc)
		require.NoError(t, err)
		assert.Equal(t, tc.sheet, sheet)
		sheet, err = css.ExtractStylesheet(doc)
		require.NoError(t, err)
		assert.Equal(t, tc.sheet, sheet)
		out, err := dom.RenderString(doc)
		require.NoError(t, err)
		if tc.rest == "" {
			assert.NotContains(t, out, "<!--")
		} else {
			assert.Contains(t, out, tc.rest)
		}
		assert.NotContains(t, out, tc.sheet)
	}
}
