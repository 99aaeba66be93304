// Package search filters and highlights the in-memory record list. Both
// operations are pure functions of the list and the query.
package search

import (
	"regexp"
	"strings"

	"github.com/milavault/milavault/internal/client/models"
)

// Filter returns the records whose joined text attributes contain the
// trimmed query as a case-insensitive substring. noteValue supplies the
// live notes text (draft-aware) for each record. An empty query returns
// the list itself.
func Filter(people []models.Person, query string, noteValue func(models.Person) string) []models.Person {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return people
	}

	var result []models.Person
	for _, p := range people {
		if strings.Contains(haystack(p, noteValue), term) {
			result = append(result, p)
		}
	}
	return result
}

func haystack(p models.Person, noteValue func(models.Person) string) string {
	parts := make([]string, 0, 7)
	for _, v := range []string{
		p.Name, p.Contact, p.Email, p.Address,
		p.SocialFacebook, p.SocialInstagram, noteValue(p),
	} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Span is one piece of a highlighted text: either a literal run or a
// query match.
type Span struct {
	Text  string
	Match bool
}

// Highlight splits text into spans, marking each case-insensitive literal
// occurrence of the trimmed query. The query is escaped before matching,
// so regex metacharacters in user input match themselves.
func Highlight(text, query string) []Span {
	term := strings.TrimSpace(query)
	if term == "" || text == "" {
		return []Span{{Text: text}}
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[0]:m[1]], Match: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
