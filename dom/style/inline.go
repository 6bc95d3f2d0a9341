package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ParseError is returned by Split if a segment of a style text is not of the
// form `name: value`.
type ParseError struct {
	Style   string // the complete style text
	Segment string // the offending segment
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid style declaration %q in %q", e.Segment, e.Style)
}

var declarationPattern = regexp.MustCompile(`(?s)^\s*([\w._-]+)\s*:\s*(.*?)\s*$`)

// Split parses the content of an inline style attribute, e.g.
//
//    color: red; margin-top:1px
//
// into a declaration block. Blank segments are ignored. A non-blank segment
// not matching `name: value` results in a *ParseError. Later occurrences of a
// property override earlier ones.
func Split(styleText string) (*Declarations, error) {
	d := NewDeclarations()
	for _, seg := range Segments(styleText) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		m := declarationPattern.FindStringSubmatch(seg)
		if m == nil {
			return nil, &ParseError{Style: styleText, Segment: seg}
		}
		d.Set(m[1], Property(m[2]))
	}
	return d, nil
}

// Render formats a declaration block as style text, `key:value; key:value;`,
// in the block's insertion order.
func Render(d *Declarations) string {
	props := d.Properties()
	parts := make([]string, len(props))
	for i, kv := range props {
		parts[i] = kv.Key + ":" + kv.Value.String() + ";"
	}
	return strings.Join(parts, " ")
}

// Collapse normalizes a style text: every property is kept once (the last
// occurrence wins), properties are sorted by name and rendered as
// `key: value;` separated by single blanks. Segments without a colon are
// dropped. Collapse is idempotent.
func Collapse(styleText string) string {
	values := make(map[string]string)
	for _, seg := range Segments(styleText) {
		key, value, found := strings.Cut(seg, ":")
		if !found {
			if strings.TrimSpace(seg) != "" {
				tracer().Debugf("collapse: dropping style segment %q", seg)
			}
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(values[k])
		b.WriteString("; ")
	}
	return strings.TrimSuffix(b.String(), " ")
}

// Segments splits a style text at semicolons. Semicolons inside quotes or
// parentheses, as found in `url(data:image/png;base64,…)`, do not split.
func Segments(styleText string) []string {
	var segs []string
	var quote rune
	depth, start := 0, 0
	for i, r := range styleText {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			segs = append(segs, styleText[start:i])
			start = i + 1
		}
	}
	if start < len(styleText) {
		segs = append(segs, styleText[start:])
	}
	return segs
}
