package search

import (
	"testing"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedNotes(p models.Person) string { return p.Notes }

func TestFilter_EmptyQueryReturnsSameSlice(t *testing.T) {
	people := []models.Person{{ID: "p1", Name: "Ann"}}

	got := Filter(people, "   ", storedNotes)
	// identity, not a copy
	require.Len(t, got, 1)
	assert.Equal(t, &people[0], &got[0])
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	people := []models.Person{
		{ID: "p1", Name: "Janet"},
		{ID: "p2", Name: "Bob", Email: "ojan@x.com"},
		{ID: "p3", Name: "Carol"},
	}

	got := Filter(people, "jan", storedNotes)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)

	got = Filter(people, "JAN", storedNotes)
	require.Len(t, got, 2)
}

func TestFilter_MatchesAcrossAllAttributes(t *testing.T) {
	people := []models.Person{
		{ID: "p1", Name: "Ann", Address: "12 Oak Street"},
		{ID: "p2", Name: "Bob", SocialInstagram: "@oakfan"},
		{ID: "p3", Name: "Carol"},
	}

	got := Filter(people, "oak", storedNotes)
	require.Len(t, got, 2)
}

func TestFilter_UsesLiveNoteValue(t *testing.T) {
	people := []models.Person{
		{ID: "p1", Name: "Ann", Notes: "old text"},
		{ID: "p2", Name: "Bob", Notes: "birthday soon"},
	}
	liveNotes := func(p models.Person) string {
		if p.ID == "p1" {
			return "birthday in June" // unsaved draft
		}
		return p.Notes
	}

	got := Filter(people, "birthday", liveNotes)
	require.Len(t, got, 2)

	// the stored value no longer matches once the draft replaces it
	got = Filter(people, "old text", liveNotes)
	assert.Empty(t, got)
}

func TestFilter_RegexSpecialsAreLiteral(t *testing.T) {
	people := []models.Person{
		{ID: "p1", Name: "a.b"},
		{ID: "p2", Name: "axb"},
	}

	got := Filter(people, "a.b", storedNotes)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestHighlight(t *testing.T) {
	spans := Highlight("Janet and JANICE", "jan")
	require.Equal(t, []Span{
		{Text: "Jan", Match: true},
		{Text: "et and "},
		{Text: "JAN", Match: true},
		{Text: "ICE"},
	}, spans)
}

func TestHighlight_NoMatchOrEmptyQuery(t *testing.T) {
	assert.Equal(t, []Span{{Text: "hello"}}, Highlight("hello", "zzz"))
	assert.Equal(t, []Span{{Text: "hello"}}, Highlight("hello", "  "))
	assert.Equal(t, []Span{{Text: ""}}, Highlight("", "jan"))
}

func TestHighlight_EscapesQuery(t *testing.T) {
	spans := Highlight("price (usd)", "(usd)")
	require.Equal(t, []Span{
		{Text: "price "},
		{Text: "(usd)", Match: true},
	}, spans)

	// a metacharacter query must not match literally different text
	assert.Equal(t, []Span{{Text: "axb"}}, Highlight("axb", "a.b"))
}
