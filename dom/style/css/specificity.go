package css

import "regexp"

var (
	idPattern        = regexp.MustCompile(`#[\w-]`)
	classPattern     = regexp.MustCompile(`\.`)
	attributePattern = regexp.MustCompile(`\[[^\]]*\]`)
	elementPattern   = regexp.MustCompile(`(?:^|[\s>+~])[A-Za-z][\w-]*`)
)

// Specificity computes the weight of a selector, as a single number:
//
//    +1   for every element name
//    +10  for every '.' (class)
//    +10  for every attribute selector '[…]'
//    +100 for every id '#…'
//
// The count is textual; the selector is never parsed. The universal selector
// and combinators do not count, thus
//
//    Specificity("div[rel=up] + *") == 11
//
// Quoted attribute values are not treated specially. Words inside them
// count as element names and a '#' counts as an id:
//
//    Specificity(`a[title="x y"]`) == 12
//    Specificity(`a[href="#top"]`) == 111
//
// Pseudo-classes are not distinguished from element names or classes;
// clients have to filter out selectors for interaction states before.
func Specificity(selector string) int {
	s := 0
	s += 100 * len(idPattern.FindAllStringIndex(selector, -1))
	s += 10 * len(classPattern.FindAllStringIndex(selector, -1))
	s += 10 * len(attributePattern.FindAllStringIndex(selector, -1))
	s += len(elementPattern.FindAllStringIndex(selector, -1))
	return s
}
