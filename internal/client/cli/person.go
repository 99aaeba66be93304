package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/client/session"
)

func (a *App) findPerson(id string) (models.Person, bool) {
	for _, p := range a.ctrl.People() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// Add collects the attributes of a new person interactively and stores them.
func (a *App) Add(ctx context.Context) error {
	var attrs models.Attributes

	prompts := []struct {
		label string
		dest  *string
	}{
		{"Enter name", &attrs.Name},
		{"Enter contact", &attrs.Contact},
		{"Enter email", &attrs.Email},
		{"Enter address", &attrs.Address},
		{"Enter facebook", &attrs.SocialFacebook},
		{"Enter instagram", &attrs.SocialInstagram},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dest = v
	}

	notes, err := GetMultiline(a.reader, "Enter notes", os.Stdout)
	if err != nil {
		return err
	}

	err = a.ctrl.Create(ctx, attrs, notes)
	fmt.Println(a.ctrl.Status())
	return err
}

// Edit opens an edit session for the record. A session already open on
// another record is autosaved first; when that autosave fails the old
// session stays active and its status explains why.
func (a *App) Edit(ctx context.Context, id string) error {
	p, ok := a.findPerson(id)
	if !ok {
		fmt.Printf("No person with id %s\n", id)
		return nil
	}

	if err := a.edit.Start(ctx, p); err != nil {
		fmt.Println(a.ctrl.Status())
		return err
	}

	fmt.Println("Editing person...")
	a.printEditData()
	return nil
}

// Set changes one field of the working copy.
func (a *App) Set(ctx context.Context, field, value string) error {
	if err := a.edit.SetField(ctx, field, value); err != nil {
		if errors.Is(err, session.ErrNoActiveEdit) {
			fmt.Println("No edit in progress, use 'edit <id>' first")
			return err
		}
		fmt.Println(err.Error())
		return err
	}
	a.printEditData()
	return nil
}

// Save commits the working copy.
func (a *App) Save(ctx context.Context) error {
	if err := a.edit.Commit(ctx); err != nil {
		if errors.Is(err, session.ErrNoActiveEdit) {
			fmt.Println("No edit in progress, use 'edit <id>' first")
			return err
		}
		fmt.Println(a.ctrl.Status())
		return err
	}
	fmt.Println(a.ctrl.Status())
	return nil
}

// Cancel discards the working copy and its draft.
func (a *App) Cancel(ctx context.Context) error {
	if err := a.edit.Cancel(ctx); err != nil {
		fmt.Println("No edit in progress, use 'edit <id>' first")
		return err
	}
	fmt.Println("Edit cancelled, draft discarded")
	return nil
}

// Delete removes the record after a confirmation prompt.
func (a *App) Delete(ctx context.Context, id string) error {
	p, ok := a.findPerson(id)
	if !ok {
		fmt.Printf("No person with id %s\n", id)
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/n)", p.Name), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.edit.Delete(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println(a.ctrl.Status())
	return nil
}

func (a *App) printEditData() {
	d := a.edit.Data()
	fmt.Printf("  name: %s\n  contact: %s\n  email: %s\n  address: %s\n  social_facebook: %s\n  social_instagram: %s\n",
		d.Name, d.Contact, d.Email, d.Address, d.SocialFacebook, d.SocialInstagram)
}
