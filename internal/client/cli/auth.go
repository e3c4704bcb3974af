package cli

import (
	"context"
	"errors"
	"os"

	"taskboard/pkg/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name/email/password and creates an account. The
// checks here mirror the server's rules so typos fail before a round trip;
// the server still has the final word.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Required(name) {
		printlnFn("Name is required")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Email(email) {
		printlnFn("Please enter a valid email address")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Password(password) {
		printlnFn("Password must be at least 6 characters")
		return nil
	}

	u, token, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}
	if err := a.setSession(u, token); err != nil {
		return err
	}
	printlnFn("Registered and logged in as", u.Email)
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, token, err := a.client.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}
	if err := a.setSession(u, token); err != nil {
		return err
	}
	printlnFn("Logged in as", u.Email)
	return nil
}

// Logout drops the local session. There is no server-side revocation; the
// token simply stops being presented.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	a.client.SetToken("")
	if err := a.store.Clear(); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Whoami prints the cached identity without a server round trip.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	u := a.session.User
	printlnFn(u.Name, "<"+u.Email+">")
	return nil
}
