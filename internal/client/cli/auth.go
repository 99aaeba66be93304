package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/milavault/milavault/internal/client/remote"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Login runs the email-link authentication flow: it asks the server to
// issue a single-use login token for the address, then prompts for that
// token and exchanges it for a session. The token is read without echo
// because it is a credential.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	loginToken, err := a.store.RequestLoginLink(ctx, email)
	if err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login link request failed: %s", err.Error())
		}
		return err
	}

	// Local setups have no mail delivery, so the issued token is shown here.
	fmt.Printf("Login token for %s: %s\n", email, loginToken)

	token, err := getSecret("Enter login token", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.Login(ctx, string(token)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.setMode(ModeOnline)
	log.Printf("Login successful")

	if err := a.ctrl.Refresh(ctx); err != nil {
		log.Printf("%s", a.ctrl.Status())
	}
	return nil
}
