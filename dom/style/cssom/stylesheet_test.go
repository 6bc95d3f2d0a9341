package cssom_test

import (
	"testing"

	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
)

func TestSheetOrder(t *testing.T) {
	r1 := cssom.NewRule("p", style.DeclarationsFrom(style.KeyValue{Key: "color", Value: "red"}))
	r2 := cssom.NewRule(" .x ", nil)
	sheet := cssom.NewSheet(r1, r2)
	if sheet.Empty() {
		t.Fatalf("expected sheet to contain rules, doesn't")
	}
	rules := sheet.Rules()
	if len(rules) != 2 || rules[0].Selector() != "p" || rules[1].Selector() != ".x" {
		t.Errorf("expected rules [p .x], have %v", rules)
	}
	if p, _ := rules[0].Declarations().Get("color"); p != "red" {
		t.Errorf("expected color of p to be red, is %q", p)
	}
	if css := rules[0].CSSText(); css != "p { color: red; }" {
		t.Errorf("unexpected CSS text %q", css)
	}
	if css := rules[1].CSSText(); css != ".x { }" {
		t.Errorf("unexpected CSS text %q", css)
	}
}

func TestAtRule(t *testing.T) {
	if !cssom.IsAtRule(cssom.NewRule("@media screen", nil)) {
		t.Errorf("expected @media to be an at-rule, isn't")
	}
	if cssom.IsAtRule(cssom.NewRule("a", nil)) {
		t.Errorf("expected 'a' not to be an at-rule, is")
	}
	var sheet *cssom.Sheet
	if !sheet.Empty() {
		t.Errorf("expected nil sheet to be empty")
	}
}
