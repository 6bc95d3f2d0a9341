package inliner

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mail = `<html><head>
<style>p { color: red; } .x { color: blue; font-weight: bold }</style>
</head><body><p class="x" style="margin: 0">Hello</p><p>World</p></body></html>`

func TestInlineString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	out, err := InlineString(mail, Options{})
	require.NoError(t, err)
	t.Logf("output = %s", out)
	assert.Contains(t, out, `<p class="x" style="color: blue; font-weight: bold; margin: 0;">Hello</p>`)
	assert.Contains(t, out, `<p style="color: red;">World</p>`)
	assert.NotContains(t, out, "<style")
}

func TestInlineStripAttrs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	out, err := InlineString(mail, Options{StripAttrs: true})
	require.NoError(t, err)
	assert.Contains(t, out, `<p style="color: blue; font-weight: bold; margin: 0;">Hello</p>`)
	assert.NotContains(t, out, `class=`)
}

func TestLeaveStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	in := New(Options{LeaveStyle: true})
	require.NoError(t, in.ReadHTML(mail))
	assert.Equal(t, "p { color: red; } .x { color: blue; font-weight: bold }", in.Stylesheet())
	require.NoError(t, in.InlineDocument())
	out, err := in.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `<p style="color: red;">World</p>`)
}

func TestSessionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	in := New(Options{})
	assert.True(t, errors.Is(in.InlineDocument(), ErrNotRead))
	_, err := in.HTML()
	assert.True(t, errors.Is(err, ErrNotRead))
	assert.True(t, errors.Is(in.Inline(nil, "p { color: red }"), ErrNoDocument))
	assert.True(t, errors.Is(in.ReadTree(nil), ErrNoDocument))
	_, err = ExtractStylesheet(nil)
	assert.True(t, errors.Is(err, ErrNoDocument))
	_, err = QueryMatches(nil, "p")
	assert.True(t, errors.Is(err, ErrNoDocument))
}

func TestWarningsArePerCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	doc, err := dom.ParseString(`<p>x</p>`)
	require.NoError(t, err)
	in := New(Options{})
	require.NoError(t, in.Inline(doc, "table { color: red } p { color: green }"))
	w := in.Warnings()
	require.Len(t, w, 1)
	assert.Equal(t, css.SelectorNoMatch, w[0].Kind)
	assert.Equal(t, "table", w[0].Selector)
	require.NoError(t, in.Inline(doc, "p { color: green }"))
	assert.Empty(t, in.Warnings())
	ps, err := QueryMatches(doc, "p")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	s, _ := dom.Attr(ps[0], "style")
	assert.Equal(t, "color: green;", s)
}

func TestMalformedInlineStyleFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	_, err := InlineString(`<style>p { color: red }</style><p style="color red">x</p>`, Options{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "inlining failed"))
}

func TestSpecificity(t *testing.T) {
	assert.Equal(t, 11, Specificity("div[rel=up] + *"))
	assert.Equal(t, 101, Specificity("p#id"))
}

func TestSessionIsExclusive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner")
	defer teardown()
	//
	in := New(Options{})
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := dom.ParseString(`<p class="x">x</p>`)
			if err != nil {
				errs[i] = err
				return
			}
			if errs[i] = in.Inline(doc, ".x { color: red } table { margin: 0 }"); errs[i] != nil {
				return
			}
			_ = in.Warnings()
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, in.Warnings(), 1)
}
