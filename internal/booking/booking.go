// Package booking creates appointment records. The two flows, free
// consultations and specialty services, share validation and snapshot
// behavior but produce differently shaped records.
package booking

import (
	"time"

	"patient-portal/internal/model"
	"patient-portal/internal/store"
)

// ConsultationInput is the consultation booking form payload.
type ConsultationInput struct {
	HealthConcern string
	PreferredDate string
	PreferredTime string
}

// ServiceInput is the specialty service booking form payload. Documents
// holds the names of the requirement items the patient checked off.
type ServiceInput struct {
	ServiceID       string
	ServiceName     string
	HealthCondition string
	PreferredDate   string
	PreferredTime   string
	Documents       []string
}

// BookConsultation validates, appends a CONS- record frozen with the user's
// current contact details, then best-effort overwrites the user's
// lastConsultation summary. Validation failures happen before any write.
func BookConsultation(st *store.Store, user *model.User, in ConsultationInput) (*model.Appointment, error) {
	var missing []string
	if in.HealthConcern == "" {
		missing = append(missing, "healthConcern")
	}
	if in.PreferredDate == "" {
		missing = append(missing, "preferredDate")
	}
	if in.PreferredTime == "" {
		missing = append(missing, "preferredTime")
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	a := &model.Appointment{
		ID:            model.NewID(model.ConsultationIDPrefix),
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		UserPhone:     user.Phone,
		Type:          model.AppointmentTypeConsultation,
		HealthConcern: in.HealthConcern,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Status:        model.StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := st.AddAppointment(a); err != nil {
		return nil, err
	}

	// summary update is best effort; the booking stands either way
	_, _ = st.UpdateUser(user.ID, model.UserPatch{
		LastConsultation: &model.ConsultationSummary{
			Date:    in.PreferredDate,
			Time:    in.PreferredTime,
			Concern: in.HealthConcern,
		},
	})
	return a, nil
}

// BookService is the specialty flow counterpart producing SRV- records.
func BookService(st *store.Store, user *model.User, in ServiceInput) (*model.Appointment, error) {
	var missing []string
	if in.HealthCondition == "" {
		missing = append(missing, "healthCondition")
	}
	if in.PreferredDate == "" {
		missing = append(missing, "preferredDate")
	}
	if in.PreferredTime == "" {
		missing = append(missing, "preferredTime")
	}
	if len(missing) > 0 {
		return nil, &model.ValidationError{Missing: missing}
	}

	a := &model.Appointment{
		ID:              model.NewID(model.ServiceIDPrefix),
		UserID:          user.ID,
		UserName:        user.Name,
		UserEmail:       user.Email,
		UserPhone:       user.Phone,
		ServiceID:       in.ServiceID,
		ServiceName:     in.ServiceName,
		HealthCondition: in.HealthCondition,
		Documents:       in.Documents,
		PreferredDate:   in.PreferredDate,
		PreferredTime:   in.PreferredTime,
		Status:          model.StatusPending,
		CreatedAt:       time.Now(),
	}
	if err := st.AddAppointment(a); err != nil {
		return nil, err
	}

	_, _ = st.UpdateUser(user.ID, model.UserPatch{
		LastService: &model.ServiceSummary{
			ID:   in.ServiceID,
			Name: in.ServiceName,
			Date: in.PreferredDate,
		},
	})
	return a, nil
}
