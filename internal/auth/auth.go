// Package auth is the identity and session manager. Sessions are persisted
// flags in the store, not tokens; password checking for regular users is an
// acknowledged stub of the source system, kept as-is and documented rather
// than fixed.
package auth

import (
	"errors"

	"patient-portal/internal/model"
	"patient-portal/internal/store"
)

var (
	// ErrNotFound means no matching identity exists for the login attempt.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidCredentials means the admin username/password pair did not
	// match the stored record. There is no lockout and no rate limiting.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)

// Default admin identity, seeded on first start when no record exists.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "GlobalHealth2023!"
)

// Session is the result of a successful login. User is nil for admin
// sessions.
type Session struct {
	User  *model.User
	Admin bool
}

// IsLoggedIn reports whether a user session record is present.
func IsLoggedIn(st *store.Store) (bool, error) {
	u, err := st.SessionUser()
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// IsAdmin reports whether the admin session flag is set.
func IsAdmin(st *store.Store) (bool, error) {
	return st.AdminLoggedIn()
}

// CurrentUser returns the session copy of the logged-in user, nil when
// nobody is logged in.
func CurrentUser(st *store.Store) (*model.User, error) {
	return st.SessionUser()
}

// EnsureAdminAccount creates the singleton admin credential record when it
// does not exist. Idempotent: an existing record is never touched, so it is
// safe to call on every start.
func EnsureAdminAccount(st *store.Store, username, password string) error {
	creds, err := st.AdminCredentials()
	if err != nil {
		return err
	}
	if creds != nil {
		return nil
	}
	return st.SetAdminCredentials(&model.AdminCredentials{
		Username: username,
		Password: password,
	})
}

// UpdateAdminCredentials overwrites the singleton admin identity. Both
// fields are required; the old pair stops working immediately.
func UpdateAdminCredentials(st *store.Store, username, password string) error {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &model.ValidationError{Missing: missing}
	}
	return st.SetAdminCredentials(&model.AdminCredentials{
		Username: username,
		Password: password,
	})
}

// Login establishes a session. Admin logins compare the plaintext pair
// against the stored record and raise the admin flags. User logins match
// identifier against email or phone and deliberately perform no password
// check; the session becomes a full copy of the matched user.
func Login(st *store.Store, identifier, password string, asAdmin bool) (*Session, error) {
	if asAdmin {
		creds, err := st.AdminCredentials()
		if err != nil {
			return nil, err
		}
		if creds == nil {
			return nil, ErrNotFound
		}
		if identifier != creds.Username || password != creds.Password {
			return nil, ErrInvalidCredentials
		}
		if err := st.SetAdminLoggedIn(); err != nil {
			return nil, err
		}
		return &Session{Admin: true}, nil
	}

	users, err := st.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == identifier || users[i].Phone == identifier {
			u := users[i]
			if err := st.SetSessionUser(&u); err != nil {
				return nil, err
			}
			return &Session{User: &u}, nil
		}
	}
	return nil, ErrNotFound
}

// Logout clears the user session and the admin flags.
func Logout(st *store.Store) error {
	return st.ClearSession()
}
