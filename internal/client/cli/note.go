package cli

import (
	"context"
	"fmt"
)

// Note toggles the notes panel for the record. Opening shows the live
// draft value; closing keeps any unsaved text around for later.
func (a *App) Note(ctx context.Context, id string) error {
	p, ok := a.findPerson(id)
	if !ok {
		fmt.Printf("No person with id %s\n", id)
		return nil
	}

	a.notes.Toggle(ctx, p)

	if openID, open := a.notes.Expanded(); open && openID == id {
		fmt.Printf("Notes for %s:\n%s\n", p.Name, a.notes.Draft(p))
	} else {
		fmt.Println("Notes panel closed, draft kept")
	}
	return nil
}

// NoteText replaces the draft text of the open notes panel.
func (a *App) NoteText(ctx context.Context, text string) error {
	id, open := a.notes.Expanded()
	if !open {
		fmt.Println("No notes panel open, use 'note <id>' first")
		return nil
	}

	a.notes.SetDraft(ctx, id, text)
	return nil
}

// NoteSave commits the draft of the open notes panel. With nothing
// unsaved the panel just closes without a server call.
func (a *App) NoteSave(ctx context.Context) error {
	id, open := a.notes.Expanded()
	if !open {
		fmt.Println("No notes panel open, use 'note <id>' first")
		return nil
	}

	p, ok := a.findPerson(id)
	if !ok {
		p.ID = id
	}

	if err := a.notes.Save(ctx, p); err != nil {
		fmt.Println(a.ctrl.Status())
		return err
	}
	if s := a.ctrl.Status(); s != "" {
		fmt.Println(s)
	}
	return nil
}
