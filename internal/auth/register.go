package auth

import (
	"io"
	"time"

	"patient-portal/internal/media"
	"patient-portal/internal/model"
	"patient-portal/internal/store"
)

// RegisterInput is the validated-shape form payload. Photo is the raw image
// the registrant uploaded; it is encoded inline before anything is written.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Services string
	Photo    io.Reader
}

// Register creates a user and logs them in. All fields are required; a
// ValidationError names every missing one and nothing is written. The photo
// encode must succeed before the write because the encoded string is a
// required field of the record. Registration establishes the session
// directly, no separate login step.
func Register(st *store.Store, in RegisterInput) (*model.User, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Address == "" {
		missing = append(missing, "address")
	}
	if in.Services == "" {
		missing = append(missing, "services")
	}
	if in.Photo == nil {
		missing = append(missing, "photo")
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	photoURL, err := media.Encode(in.Photo)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:               model.NewID(model.UserIDPrefix),
		Name:             in.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		Address:          in.Address,
		Services:         in.Services,
		PhotoURL:         photoURL,
		RegistrationDate: time.Now(),
	}

	if err := st.AddUser(u); err != nil {
		return nil, err
	}
	// second, independent write; no atomicity with the one above
	if err := st.SetSessionUser(u); err != nil {
		return nil, err
	}
	return u, nil
}
