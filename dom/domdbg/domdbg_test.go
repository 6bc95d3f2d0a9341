package domdbg_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/domdbg"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	root, err := dom.ParseString(`<p style="color: red;">Hello World</p><br>`)
	require.NoError(t, err)
	out := domdbg.Print(root)
	t.Logf("\n%s", out)
	if !strings.Contains(out, `<p> style="color: red;"`) {
		t.Errorf("expected styled paragraph in output, isn't")
	}
	if !strings.Contains(out, `"Hello Worl..."`) {
		t.Errorf("expected shortened text in output, isn't")
	}
}

func TestGraphViz(t *testing.T) {
	root, err := dom.ParseString(`<p style="color: red; margin: 0">x</p>`)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, domdbg.ToGraphViz(root, &b, true))
	out := b.String()
	if !strings.HasPrefix(out, "digraph g {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected a digraph, have %s", out)
	}
	if !strings.Contains(out, "_style") || !strings.Contains(out, "margin:") {
		t.Errorf("expected style record in digraph, isn't")
	}
}

func TestShortenKeepsRunes(t *testing.T) {
	root, err := dom.ParseString(`<p>Grüße aus München</p>`)
	require.NoError(t, err)
	out := domdbg.Print(root)
	if !strings.Contains(out, `"Grüße aus ..."`) {
		t.Errorf("expected text to be cut after 10 runes, output is %s", out)
	}
	var b strings.Builder
	require.NoError(t, domdbg.ToGraphViz(root, &b, false))
	if !utf8.ValidString(out) || !utf8.ValidString(b.String()) {
		t.Errorf("expected output to be valid UTF-8, isn't")
	}
}
