package css_test

import (
	"testing"

	"github.com/lasse-unity3d/CSS-Inliner/dom/style/css"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
)

func TestSpecificity(t *testing.T) {
	for _, tc := range []struct {
		selector    string
		specificity int
	}{
		{"#a", 100},
		{".a.b", 20},
		{"div p", 2},
		{"div[rel=up] + *", 11},
		{"li.red.level", 21},
		{"*", 0},
		{"a", 1},
		{"div#main .x > span", 112},
		{"ul  li", 2},
		{`[class=".foo"]`, 20},
		{`a[title="x y"]`, 12},
		{`a[href="#top"]`, 111},
	} {
		if s := css.Specificity(tc.selector); s != tc.specificity {
			t.Errorf("expected specificity of %q to be %d, is %d", tc.selector, tc.specificity, s)
		}
	}
}

func TestIsInlinable(t *testing.T) {
	for _, tc := range []struct {
		selector  string
		inlinable bool
	}{
		{"a", true},
		{"li:first-child", true},
		{"a:hover", false},
		{"A:HOVER", false},
		{"p::first-line", false},
		{"input:focus", false},
		{"a:visited span", false},
		{"@media screen", false},
		{" @font-face", false},
	} {
		if css.IsInlinable(cssom.NewRule(tc.selector, nil)) != tc.inlinable {
			t.Errorf("expected inlinable(%q) to be %v, isn't", tc.selector, tc.inlinable)
		}
	}
}
