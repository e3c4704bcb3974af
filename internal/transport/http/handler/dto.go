package handler

import (
	"time"

	"taskboard/internal/domain"
)

// userView is the public shape of an account: the digest and update
// timestamp never leave the server.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func viewUser(u *domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
