package store

import (
	"patient-portal/internal/model"
)

// The session is a flag, not a token: a user session is the presence of a
// full denormalized User copy under userData, an admin session is the
// literal string "true" under two legacy flag keys. That presence is the
// entire trust model, by explicit scope of this system.

const flagTrue = "true"

// SessionUser returns the session copy of the logged-in user, nil when no
// session exists. The copy can drift from the user table; UpdateUser is the
// one operation that re-syncs it.
func (s *Store) SessionUser() (*model.User, error) {
	var u model.User
	ok, err := s.getJSON(KeySessionUser, &u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// SetSessionUser establishes or refreshes the user session.
func (s *Store) SetSessionUser(u *model.User) error {
	return s.setJSON(KeySessionUser, u)
}

// AdminLoggedIn reports the admin session flag.
func (s *Store) AdminLoggedIn() (bool, error) {
	v, ok, err := s.kv.Get(KeyAdminLoggedIn)
	if err != nil {
		return false, &StorageError{Key: KeyAdminLoggedIn, Err: err}
	}
	return ok && v == flagTrue, nil
}

// SetAdminLoggedIn raises both admin flags. The isAdmin key is the legacy
// secondary flag some consumers still read.
func (s *Store) SetAdminLoggedIn() error {
	if err := s.kv.Set(KeyAdminLoggedIn, flagTrue); err != nil {
		return &StorageError{Key: KeyAdminLoggedIn, Err: err}
	}
	if err := s.kv.Set(KeyIsAdmin, flagTrue); err != nil {
		return &StorageError{Key: KeyIsAdmin, Err: err}
	}
	return nil
}

// ClearSession removes the user session and both admin flags. The three
// deletes are independent; an error leaves a partial logout.
func (s *Store) ClearSession() error {
	if err := s.delete(KeySessionUser); err != nil {
		return err
	}
	if err := s.delete(KeyAdminLoggedIn); err != nil {
		return err
	}
	return s.delete(KeyIsAdmin)
}

// AdminCredentials returns the singleton credential record, nil when it has
// not been created yet.
func (s *Store) AdminCredentials() (*model.AdminCredentials, error) {
	var c model.AdminCredentials
	ok, err := s.getJSON(KeyAdminCredentials, &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// SetAdminCredentials overwrites the singleton. At most one admin identity
// exists at a time.
func (s *Store) SetAdminCredentials(c *model.AdminCredentials) error {
	return s.setJSON(KeyAdminCredentials, c)
}
