package content

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// placeholderPattern matches an image tag that has no src attribute:
//
//	<img TOKEN>  or  <img TOKEN/>  or  <img TOKEN />
//
// TOKEN is a single unquoted attribute (no whitespace, quotes or '>').
// The lookahead rejects any tag that contains "src=" before its closing '>'.
// The tag name is case-sensitive.
const placeholderPattern = `<img\s+(?![^>]*src=)([^"'>\s]+)\s*/?>`

// placeholderTimeout bounds a single placeholder scan. The lookahead rescans
// up to the next '>' at every "<img ", which is quadratic on hostile input.
const placeholderTimeout = 250 * time.Millisecond

var placeholderRe = newPlaceholderRe(placeholderTimeout)

func newPlaceholderRe(timeout time.Duration) *regexp2.Regexp {
	re := regexp2.MustCompile(placeholderPattern, regexp2.None)
	re.MatchTimeout = timeout
	return re
}

// placeholderMarkup is the tag a matched placeholder is rewritten to.
func placeholderMarkup(imageURL string) string {
	return `<img src="` + imageURL + `" />`
}

// findPlaceholders returns up to limit placeholder matches in text.
// A matcher error (timeout) is returned as is; the matches found before it
// are not a reliable count.
func findPlaceholders(re *regexp2.Regexp, text string, limit int) ([]string, error) {
	var found []string
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil && len(found) < limit {
		found = append(found, m.String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning for image placeholders: %w", err)
	}
	return found, nil
}

// CountPlaceholders reports how many image placeholders text contains.
// It fails when the scan does not finish within the match timeout.
func CountPlaceholders(text string) (int, error) {
	found, err := findPlaceholders(placeholderRe, text, len(text)+1)
	if err != nil {
		return 0, err
	}
	return len(found), nil
}

// rewritePlaceholder returns the rewritten markup when text holds exactly one
// placeholder. Zero or several placeholders are ambiguous and yield false, as
// does a scan that timed out.
func rewritePlaceholder(text, imageURL string) (string, bool) {
	// two is enough to tell "exactly one" from "many"
	found, err := findPlaceholders(placeholderRe, text, 2)
	if err != nil || len(found) != 1 {
		return "", false
	}
	return placeholderMarkup(imageURL), true
}

// ExtractImagePlaceholder detects a single image placeholder in text and
// turns it into an image part whose URL is the placeholder rewritten to point
// at imageURL. When text contains no placeholder, or more than one, it
// returns false and the text should be used unmodified.
func ExtractImagePlaceholder(text, imageURL string) (ImagePart, bool) {
	markup, ok := rewritePlaceholder(text, imageURL)
	if !ok {
		return ImagePart{}, false
	}
	return Image(markup), true
}
