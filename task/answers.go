package task

import (
	"regexp"
	"strings"
)

var (
	answerPrefix = regexp.MustCompile(`^Answer:`)
	namePattern  = regexp.MustCompile(`\b[A-Z][a-z]*\b`)
)

// ExtractNames pulls candidate guest names out of a free-text model answer:
// capitalized words, in order of appearance, truncated to the declared set
// size. Extraction noise is tolerated downstream — names that aren't on the
// roster simply score nothing.
func ExtractNames(answer string, setSize int) []string {
	answer = strings.TrimSpace(answerPrefix.ReplaceAllString(strings.TrimSpace(answer), ""))
	names := namePattern.FindAllString(answer, -1)
	if len(names) > setSize {
		names = names[:setSize]
	}
	return names
}
