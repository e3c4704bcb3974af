package cli

import (
	"context"
	"errors"
	"os"

	"taskboard/pkg/validate"
)

// Profile fetches and prints the server-side profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	u, err := a.client.Profile(ctx)
	if err != nil {
		printlnFn("Failed to load profile:", err.Error())
		return err
	}
	printlnFn("Name:   ", u.Name)
	printlnFn("Email:  ", u.Email)
	printlnFn("Member since:", u.CreatedAt.Format("2006-01-02"))
	return nil
}

// Rename updates the display name. Email is immutable, so it is the only
// editable field.
func (a *App) Rename(ctx context.Context) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Required(name) {
		printlnFn("Name is required")
		return nil
	}
	u, err := a.client.UpdateProfile(ctx, name)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	// keep the cached session in step with the server
	a.session.User = u
	if err := a.store.Save(a.session); err != nil {
		return err
	}
	printlnFn("Profile updated, name is now", u.Name)
	return nil
}
