package css

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"golang.org/x/net/html"
)

// ErrNoTree is returned if an operation is called without a document tree.
var ErrNoTree = errors.New("no document tree supplied")

var screenMedia = regexp.MustCompile(`(?i)\b(all|screen)\b`)

// ExtractStylesheet collects the text of all `<style>` elements in tree
// order which apply to screen media, i.e. which have no media attribute or
// a media attribute naming `all` or `screen`. HTML comment delimiters
// are stripped from the text. Every qualifying `<style>` element is
// removed from the tree; others (e.g., media="print") are left in place.
//
// `<style>` elements hidden in HTML comments, as in
//
//    <!--[if mso]><style>…</style><![endif]-->
//
// contribute as well. They are cut out of the comment text; a comment left
// blank is removed.
func ExtractStylesheet(root *html.Node) (string, error) {
	return extract(root, true)
}

// ReadStylesheet works like ExtractStylesheet, but leaves the tree unchanged.
func ReadStylesheet(root *html.Node) (string, error) {
	return extract(root, false)
}

func extract(root *html.Node, remove bool) (string, error) {
	if root == nil {
		return "", ErrNoTree
	}
	var blocks []string
	dom.Walk(root, func(n *html.Node) bool {
		switch {
		case n.Type == html.CommentNode:
			blocks = append(blocks, extractFromComment(n, remove)...)
		case dom.NodeIsStyle(n):
			media, ok := dom.Attr(n, "media")
			if !appliesToScreen(media, ok) {
				return true
			}
			text := stripCommentDelimiters(dom.TextContent(n))
			tracer().Debugf("extracting <style> block of %d bytes", len(text))
			blocks = append(blocks, text)
			if remove {
				dom.Detach(n)
			}
		}
		return true
	})
	return strings.Join(blocks, "\n"), nil
}

func appliesToScreen(media string, present bool) bool {
	return !present || screenMedia.MatchString(media)
}

func stripCommentDelimiters(text string) string {
	text = strings.ReplaceAll(text, "<!--", "")
	return strings.ReplaceAll(text, "-->", "")
}

// extractFromComment returns the text of the screen `<style>` blocks found
// in a comment node. If remove is set, the blocks are cut out of the comment.
func extractFromComment(n *html.Node, remove bool) []string {
	styles := stylesInComment(n.Data)
	if len(styles) == 0 {
		return nil
	}
	blocks := make([]string, len(styles))
	var rest strings.Builder
	last := 0
	for i, s := range styles {
		blocks[i] = stripCommentDelimiters(s.text)
		rest.WriteString(n.Data[last:s.start])
		last = s.end
	}
	rest.WriteString(n.Data[last:])
	tracer().Debugf("extracting %d <style> blocks from a comment", len(blocks))
	if remove {
		if strings.TrimSpace(rest.String()) == "" {
			dom.Detach(n)
		} else {
			n.Data = rest.String()
		}
	}
	return blocks
}

// commentedStyle is a screen `<style>` element found in the text of a
// comment, with its byte range [start, end) in that text.
type commentedStyle struct {
	text       string
	start, end int
}

// stylesInComment tokenizes the text of a comment and returns its screen
// `<style>` elements in order. An unterminated element extends to the end
// of the text.
func stylesInComment(comment string) []commentedStyle {
	var styles []commentedStyle
	var current *commentedStyle
	screen := false
	z := html.NewTokenizer(strings.NewReader(comment))
	pos := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		length := len(z.Raw())
		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if current != nil || string(name) != "style" {
				break
			}
			media, present := "", false
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "media" {
					media, present = string(val), true
				}
			}
			current = &commentedStyle{start: pos}
			screen = appliesToScreen(media, present)
		case html.TextToken:
			if current != nil {
				current.text += string(z.Text())
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); current != nil && string(name) == "style" {
				current.end = pos + length
				if screen {
					styles = append(styles, *current)
				}
				current = nil
			}
		}
		pos += length
	}
	if current != nil && screen {
		current.end = len(comment)
		styles = append(styles, *current)
	}
	return styles
}
