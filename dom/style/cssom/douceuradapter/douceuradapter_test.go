package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse("h1, h2 { color: red } p { margin: 0 !important; }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "h1", rules[0].Selector())
	assert.Equal(t, "h2", rules[1].Selector())
	assert.Equal(t, "p", rules[2].Selector())
	color, _ := rules[1].Declarations().Get("color")
	assert.Equal(t, "red", color.String())
	margin, _ := rules[2].Declarations().Get("margin")
	assert.Equal(t, "0 !important", margin.String())
	assert.Same(t, rules[0].Declarations(), rules[1].Declarations())
}

func TestParseEmpty(t *testing.T) {
	sheet, err := douceuradapter.Parse("")
	require.NoError(t, err)
	if !sheet.Empty() {
		t.Errorf("expected empty stylesheet, have %d rules", len(sheet.Rules()))
	}
}

func TestParseAtRule(t *testing.T) {
	sheet, err := douceuradapter.Parse("a { color: red } @media print { p { color: blue } }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.True(t, strings.HasPrefix(rules[1].Selector(), "@media"))
	assert.True(t, cssom.IsAtRule(rules[1]))
	assert.Contains(t, rules[1].CSSText(), "@media")
	assert.Equal(t, "a { color: red; }", rules[0].CSSText())
}
