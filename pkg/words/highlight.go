package words

import (
	"fmt"
	"regexp"

	"titleheat/models"
)

// HighlightTitle wraps each targeted word in <strong> tags inside the
// English segment of a title. The canonical form is tried first; when
// it is not present verbatim the decanonicalized form is tried
// instead, so "man" still bolds "Men" in "Good Men".
func HighlightTitle(title string, target models.HighlightTarget) string {
	display := EnglishTitle(title)
	if target.IsNone() {
		return display
	}

	for _, word := range target.Words() {
		re, err := wordPattern(word)
		if err != nil {
			continue
		}
		if re.MatchString(display) {
			display = re.ReplaceAllString(display, "<strong>$1</strong>")
			continue
		}
		re, err = wordPattern(Unnormalize(word))
		if err != nil {
			continue
		}
		display = re.ReplaceAllString(display, "<strong>$1</strong>")
	}
	return display
}

func wordPattern(word string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(`(?i)\b(%s)\b`, regexp.QuoteMeta(word)))
}
