package css

import (
	"fmt"

	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
	"golang.org/x/net/html"
)

// MatchRecord records that a rule applies to an element.
type MatchRecord struct {
	Selector     string
	Specificity  int
	Sequence     int                 // position in the order of discovery, unique per pass
	Declarations *style.Declarations // shared with the rule, read-only
}

func (r MatchRecord) String() string {
	return fmt.Sprintf("[%d|%d] %s %s", r.Specificity, r.Sequence, r.Selector, r.Declarations)
}

// WarningKind classifies recoverable problems of an inlining pass.
type WarningKind int

// Kinds of warnings
const (
	SelectorInvalid WarningKind = iota // selector cannot be evaluated
	SelectorNoMatch                    // selector matches no element
)

func (k WarningKind) String() string {
	switch k {
	case SelectorInvalid:
		return "invalid selector"
	case SelectorNoMatch:
		return "selector matches nothing"
	}
	return "unknown"
}

// Warning is a recoverable problem with a single selector. The selector has
// been skipped, the pass went on.
type Warning struct {
	Kind     WarningKind
	Selector string
	Err      error // cause, if any
}

func (w Warning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("%s %q: %v", w.Kind, w.Selector, w.Err)
	}
	return fmt.Sprintf("%s %q", w.Kind, w.Selector)
}

func (w Warning) Unwrap() error {
	return w.Err
}

// Pass holds the state of one inlining pass: the sequence counter, the
// match records per element and the warnings. A new Pass has to be created
// for every run over a tree.
type Pass struct {
	sequence int
	matches  map[*html.Node][]MatchRecord
	elements []*html.Node
	skipped  []cssom.Rule
	warnings []Warning
}

// NewPass creates an empty pass.
func NewPass() *Pass {
	return &Pass{matches: make(map[*html.Node][]MatchRecord)}
}

// Record appends a match record for an element, assigning the next sequence
// position.
func (p *Pass) Record(n *html.Node, rule cssom.Rule, specificity int) MatchRecord {
	rec := MatchRecord{
		Selector:     rule.Selector(),
		Specificity:  specificity,
		Sequence:     p.sequence,
		Declarations: rule.Declarations(),
	}
	p.sequence++
	if _, seen := p.matches[n]; !seen {
		p.elements = append(p.elements, n)
	}
	p.matches[n] = append(p.matches[n], rec)
	return rec
}

// Matches returns the match records of an element, in order of discovery.
func (p *Pass) Matches(n *html.Node) []MatchRecord {
	return p.matches[n]
}

// Elements returns all elements with at least one match record, in order of
// their first match.
func (p *Pass) Elements() []*html.Node {
	return p.elements
}

// Skipped returns the rules which have been excluded from inlining because
// they cannot be expressed as inline styles.
func (p *Pass) Skipped() []cssom.Rule {
	return p.skipped
}

// Warnings returns the warnings of the pass, in order of occurence.
func (p *Pass) Warnings() []Warning {
	return p.warnings
}

func (p *Pass) warn(kind WarningKind, selector string, err error) {
	w := Warning{Kind: kind, Selector: selector, Err: err}
	tracer().Infof("skipping selector: %v", w)
	p.warnings = append(p.warnings, w)
}
