package booking_test

import (
	"errors"
	"strings"
	"testing"

	"patient-portal/internal/booking"
	"patient-portal/internal/model"
	"patient-portal/internal/store"
)

func setup(t *testing.T) (*store.Store, *model.User) {
	t.Helper()
	st := store.New(store.NewMemKV())
	u := &model.User{
		ID:       "GHTEST01",
		Name:     "A",
		Phone:    "9999900000",
		Email:    "a@x.com",
		Address:  "X",
		Services: "pharmacy",
	}
	if err := st.AddUser(u); err != nil {
		t.Fatalf("add user: %v", err)
	}
	if err := st.SetSessionUser(u); err != nil {
		t.Fatalf("session: %v", err)
	}
	return st, u
}

func TestBookConsultation(t *testing.T) {
	st, u := setup(t)

	appt, err := booking.BookConsultation(st, u, booking.ConsultationInput{
		HealthConcern: "headache",
		PreferredDate: "2025-01-01",
		PreferredTime: "10:00",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if !strings.HasPrefix(appt.ID, model.ConsultationIDPrefix) {
		t.Errorf("bad id: %q", appt.ID)
	}
	if appt.Status != model.StatusPending {
		t.Errorf("status: %q", appt.Status)
	}
	if !appt.IsConsultation() {
		t.Errorf("type: %q", appt.Type)
	}
	if appt.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
	// contact details are frozen at booking time
	if appt.UserName != "A" || appt.UserEmail != "a@x.com" || appt.UserPhone != "9999900000" {
		t.Errorf("snapshot wrong: %+v", appt)
	}

	mine, err := st.AppointmentsForUser(u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != appt.ID {
		t.Fatalf("listForUser: %+v", mine)
	}

	// summary lands on both the table row and the session copy
	row, _ := st.UserByID(u.ID)
	if row.LastConsultation == nil || row.LastConsultation.Concern != "headache" {
		t.Errorf("lastConsultation on row: %+v", row.LastConsultation)
	}
	cur, _ := st.SessionUser()
	if cur.LastConsultation == nil || cur.LastConsultation.Date != "2025-01-01" {
		t.Errorf("lastConsultation on session: %+v", cur.LastConsultation)
	}
}

func TestBookService(t *testing.T) {
	st, u := setup(t)

	appt, err := booking.BookService(st, u, booking.ServiceInput{
		ServiceID:       "cardiology",
		ServiceName:     "Cardiology",
		HealthCondition: "arrhythmia",
		PreferredDate:   "2025-02-02",
		PreferredTime:   "14:30",
		Documents:       []string{"List of current medications"},
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if !strings.HasPrefix(appt.ID, model.ServiceIDPrefix) {
		t.Errorf("bad id: %q", appt.ID)
	}
	if appt.Status != model.StatusPending {
		t.Errorf("status: %q", appt.Status)
	}
	if appt.IsConsultation() {
		t.Error("service booking tagged as consultation")
	}
	if appt.ServiceID != "cardiology" || appt.ServiceName != "Cardiology" {
		t.Errorf("service fields: %+v", appt)
	}
	if len(appt.Documents) != 1 {
		t.Errorf("documents: %v", appt.Documents)
	}

	row, _ := st.UserByID(u.ID)
	if row.LastService == nil || row.LastService.ID != "cardiology" || row.LastService.Date != "2025-02-02" {
		t.Errorf("lastService: %+v", row.LastService)
	}
}

func TestBookingOrder(t *testing.T) {
	st, u := setup(t)

	first, err := booking.BookConsultation(st, u, booking.ConsultationInput{
		HealthConcern: "first", PreferredDate: "2025-01-01", PreferredTime: "09:00",
	})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := booking.BookService(st, u, booking.ServiceInput{
		ServiceID: "pharmacy", ServiceName: "Pharmacy",
		HealthCondition: "second", PreferredDate: "2025-01-02", PreferredTime: "09:00",
	})
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	mine, err := st.AppointmentsForUser(u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != first.ID || mine[1].ID != second.ID {
		t.Fatalf("booking order lost: %+v", mine)
	}
}

func TestConsultationValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      booking.ConsultationInput
		missing string
	}{
		{"no concern", booking.ConsultationInput{PreferredDate: "2025-01-01", PreferredTime: "10:00"}, "healthConcern"},
		{"no date", booking.ConsultationInput{HealthConcern: "x", PreferredTime: "10:00"}, "preferredDate"},
		{"no time", booking.ConsultationInput{HealthConcern: "x", PreferredDate: "2025-01-01"}, "preferredTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, u := setup(t)
			_, err := booking.BookConsultation(st, u, tt.in)

			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, f := range ve.Missing {
				if f == tt.missing {
					found = true
				}
			}
			if !found {
				t.Errorf("field %q not reported: %v", tt.missing, ve.Missing)
			}

			appts, _ := st.Appointments()
			if len(appts) != 0 {
				t.Errorf("write happened before validation: %d records", len(appts))
			}
		})
	}
}

func TestServiceValidation(t *testing.T) {
	st, u := setup(t)

	_, err := booking.BookService(st, u, booking.ServiceInput{
		ServiceID: "oncology", ServiceName: "Oncology",
	})
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Missing) != 3 {
		t.Errorf("expected all three shared fields reported: %v", ve.Missing)
	}

	appts, _ := st.Appointments()
	if len(appts) != 0 {
		t.Errorf("write happened before validation: %d records", len(appts))
	}
	row, _ := st.UserByID(u.ID)
	if row.LastService != nil {
		t.Error("summary written for failed booking")
	}
}

func TestServiceByID(t *testing.T) {
	svc := booking.ServiceByID("cardiology")
	if svc == nil || svc.Title != "Cardiology" || len(svc.Requirements) == 0 {
		t.Fatalf("catalog lookup: %+v", svc)
	}
	if booking.ServiceByID("astrology") != nil {
		t.Error("unknown id matched a catalog entry")
	}
}
