package eventparse

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Connective words stranded at the edges of the title once their phrase has
// been consumed ("lunch at" after the time was extracted).
var edgeWords = map[string]bool{
	"at": true, "on": true, "for": true, "with": true,
	"from": true, "to": true, "and": true, "in": true,
}

// assembleTitle turns the unconsumed remainder of the input into the event
// title: whitespace collapsed, stranded connectives and punctuation trimmed.
func assembleTitle(text string) (string, *Error) {
	title := whitespaceRe.ReplaceAllString(text, " ")
	title = strings.TrimSpace(title)
	title = strings.Trim(title, ",;-")
	title = strings.TrimSpace(title)

	words := strings.Fields(title)
	for len(words) > 0 && edgeWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	for len(words) > 0 && edgeWords[strings.ToLower(words[0])] {
		words = words[1:]
	}

	title = strings.Join(words, " ")
	if title == "" {
		return "", newError(CodeEmptyTitle, "no words left for a title")
	}
	return title, nil
}
