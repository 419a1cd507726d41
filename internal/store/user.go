package store

import (
	"patient-portal/internal/model"
)

// Users returns the full user table in insertion order. An absent key is an
// empty table.
func (s *Store) Users() ([]model.User, error) {
	var users []model.User
	if _, err := s.getJSON(KeyAllUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID scans for id. Returns nil when no record matches.
func (s *Store) UserByID(id string) (*model.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// AddUser appends. Duplicate ids are not checked; uniqueness is the
// generator's problem.
func (s *Store) AddUser(u *model.User) error {
	users, err := s.Users()
	if err != nil {
		return err
	}
	users = append(users, *u)
	return s.setJSON(KeyAllUsers, users)
}

// UpdateUser shallow-merges patch into the matching record. Returns false
// and leaves the table untouched when no record matches. When the target is
// the current session user, the session copy receives the same merge so the
// two reads never diverge.
func (s *Store) UpdateUser(id string, patch model.UserPatch) (bool, error) {
	users, err := s.Users()
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	patch.Apply(&users[idx])
	if err := s.setJSON(KeyAllUsers, users); err != nil {
		return false, err
	}

	// re-sync the session copy; the two writes are not atomic
	cur, err := s.SessionUser()
	if err != nil {
		return false, err
	}
	if cur != nil && cur.ID == id {
		patch.Apply(cur)
		if err := s.SetSessionUser(cur); err != nil {
			return false, err
		}
	}
	return true, nil
}
