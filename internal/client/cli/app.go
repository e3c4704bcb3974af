// Package cli is the interactive terminal client for taskboard: the same
// flows the web dashboard offers (register/login, task CRUD with search and
// status filter, profile editing), driven from a REPL.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"taskboard/internal/client/api"
	"taskboard/internal/client/session"
)

type App struct {
	client  *api.Client
	store   *session.Store
	session *session.Session
	reader  *bufio.Reader
}

func NewApp(client *api.Client, store *session.Store) (*App, error) {
	a := &App{
		client: client,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
	}
	// pick up a previous login; a stale token just 401s on first use
	sess, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if sess != nil {
		a.session = sess
		a.client.SetToken(sess.Token)
	}
	return a, nil
}

func (a *App) isLoggedIn() bool { return a.session != nil }

// status renders the REPL prompt segment, e.g. "ann@x.com" or "not logged in".
func (a *App) status() string {
	if a.session == nil {
		return "not logged in"
	}
	return a.session.User.Email
}

func (a *App) setSession(u api.User, token string) error {
	a.session = &session.Session{Token: token, User: u}
	a.client.SetToken(token)
	if err := a.store.Save(a.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (a *App) requireLogin() bool {
	if a.session == nil {
		printlnFn("Please login first (try: login)")
		return false
	}
	return true
}
