package store

import (
	"patient-portal/internal/model"
)

// Appointments returns the append-only booking table in insertion order.
func (s *Store) Appointments() ([]model.Appointment, error) {
	var appts []model.Appointment
	if _, err := s.getJSON(KeyAllAppointments, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// AppointmentsForUser filters by userId. The reference is not enforced; a
// dangling id simply matches nothing.
func (s *Store) AppointmentsForUser(userID string) ([]model.Appointment, error) {
	appts, err := s.Appointments()
	if err != nil {
		return nil, err
	}
	var out []model.Appointment
	for _, a := range appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// AddAppointment appends. Records are never mutated or deleted after this.
func (s *Store) AddAppointment(a *model.Appointment) error {
	appts, err := s.Appointments()
	if err != nil {
		return err
	}
	appts = append(appts, *a)
	return s.setJSON(KeyAllAppointments, appts)
}
