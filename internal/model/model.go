package model

import (
	"fmt"
	"strings"
	"time"
)

// Appointment status values. Appointments are created pending; no transition
// authority exists in this layer, so the other two values are only ever read.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// AppointmentTypeConsultation marks free expert consultations; specialty
// service bookings carry ServiceID/ServiceName instead of a type tag.
const AppointmentTypeConsultation = "consultation"

// RegistrationServices are the service interests offered on the registration
// form. User.Services may also hold a specialty service id (see the booking
// catalog), so this set is advisory, not validated against.
var RegistrationServices = []string{
	"health_checkup",
	"special_care",
	"lab_testing",
	"vaccinations",
	"chronic_care",
	"pharmacy",
}

type User struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email"`
	Address          string               `json:"address"`
	Services         string               `json:"services"`
	PhotoURL         string               `json:"photoUrl"`
	RegistrationDate time.Time            `json:"registrationDate"`
	LastConsultation *ConsultationSummary `json:"lastConsultation,omitempty"`
	LastService      *ServiceSummary      `json:"lastService,omitempty"`
}

// ConsultationSummary is the most recent consultation booking, overwritten
// on each new one.
type ConsultationSummary struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Concern string `json:"concern"`
}

// ServiceSummary is the most recent specialty service booking.
type ServiceSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Appointment is a booking record. The two booking flows produce structurally
// different records: consultations set Type and HealthConcern, specialty
// bookings set ServiceID, ServiceName, HealthCondition and Documents. The
// user contact fields are a snapshot frozen at booking time and are not kept
// in sync with later profile edits.
type Appointment struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	UserEmail       string    `json:"userEmail"`
	UserPhone       string    `json:"userPhone"`
	Type            string    `json:"type,omitempty"`
	ServiceID       string    `json:"serviceId,omitempty"`
	ServiceName     string    `json:"serviceName,omitempty"`
	HealthConcern   string    `json:"healthConcern,omitempty"`
	HealthCondition string    `json:"healthCondition,omitempty"`
	Documents       []string  `json:"documents,omitempty"`
	PreferredDate   string    `json:"preferredDate"`
	PreferredTime   string    `json:"preferredTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IsConsultation reports which booking flow produced the record.
func (a *Appointment) IsConsultation() bool {
	return a.Type == AppointmentTypeConsultation
}

// AdminCredentials is the singleton admin identity, stored in plaintext.
// Client-side credential secrecy is an explicit non-goal of this system.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPatch is a shallow partial update. Only non-nil fields are applied,
// replacing the source app's untyped object spread.
type UserPatch struct {
	Name             *string
	Phone            *string
	Email            *string
	Address          *string
	Services         *string
	PhotoURL         *string
	LastConsultation *ConsultationSummary
	LastService      *ServiceSummary
}

// Apply merges the set fields of p into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Services != nil {
		u.Services = *p.Services
	}
	if p.PhotoURL != nil {
		u.PhotoURL = *p.PhotoURL
	}
	if p.LastConsultation != nil {
		u.LastConsultation = p.LastConsultation
	}
	if p.LastService != nil {
		u.LastService = p.LastService
	}
}

// ValidationError reports required fields that were missing or empty. It is
// recoverable: the caller corrects the input and retries; nothing was written.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
