package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/client/search"
)

// List re-fetches the owner's records and prints them with the current
// status line.
func (a *App) List(ctx context.Context) error {
	if err := a.ctrl.Refresh(ctx); err != nil {
		log.Println(a.ctrl.Status())
		return err
	}

	for _, p := range a.ctrl.People() {
		a.printPerson(p, "")
	}
	if s := a.ctrl.Status(); s != "" {
		fmt.Println(s)
	}
	return nil
}

// Search filters the in-memory list without a server round trip, so
// unsaved notes drafts take part in the match.
func (a *App) Search(ctx context.Context, query string) error {
	matches := search.Filter(a.ctrl.People(), query, a.ctrl.NoteValue)
	for _, p := range matches {
		a.printPerson(p, query)
	}
	fmt.Printf("%d of %d people match %q\n", len(matches), len(a.ctrl.People()), query)
	return nil
}

func (a *App) printPerson(p models.Person, query string) {
	fmt.Printf("%s  %s\n", p.ID, highlighted(p.Name, query))

	fields := []struct {
		label string
		value string
	}{
		{"contact", p.Contact},
		{"email", p.Email},
		{"address", p.Address},
		{"facebook", p.SocialFacebook},
		{"instagram", p.SocialInstagram},
		{"notes", a.ctrl.NoteValue(p)},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Printf("    %s: %s\n", f.label, highlighted(f.value, query))
	}
}

// highlighted wraps every match of query in brackets; with an empty
// query the text passes through unchanged.
func highlighted(text, query string) string {
	if strings.TrimSpace(query) == "" {
		return text
	}
	var b strings.Builder
	for _, span := range search.Highlight(text, query) {
		if span.Match {
			b.WriteString("[" + span.Text + "]")
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}
