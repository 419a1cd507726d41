// Command portal is the terminal front end of the patient portal: patient
// registration with a virtual ID card, consultation and specialty service
// booking, and the admin console. It talks to storage only through the
// store adapter and the auth/booking services.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"patient-portal/internal/auth"
	"patient-portal/internal/booking"
	"patient-portal/internal/media"
	"patient-portal/internal/model"
	"patient-portal/internal/store"
)

func main() {
	_ = godotenv.Load()
	dataFile := env("PORTAL_DATA_FILE", "portal-data.json")

	st := store.New(store.NewFileKV(dataFile))
	err := auth.EnsureAdminAccount(st,
		env("ADMIN_USERNAME", auth.DefaultAdminUsername),
		env("ADMIN_PASSWORD", auth.DefaultAdminPassword),
	)
	if err != nil {
		log.Fatalf("admin account: %v", err)
	}

	a := &app{st: st, in: bufio.NewReader(os.Stdin)}
	a.run()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type app struct {
	st *store.Store
	in *bufio.Reader
}

func (a *app) run() {
	for {
		// resume an existing session, the way the routing guards would
		if ok, _ := auth.IsAdmin(a.st); ok {
			a.adminMenu()
			continue
		}
		if ok, _ := auth.IsLoggedIn(a.st); ok {
			a.userMenu()
			continue
		}

		fmt.Println("\n=== Global Health Patient Portal ===")
		fmt.Println("1) Login")
		fmt.Println("2) Register")
		fmt.Println("3) Exit")
		switch a.prompt("> ") {
		case "1":
			a.login()
		case "2":
			a.register()
		case "3":
			return
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *app) login() {
	asAdmin := strings.EqualFold(a.prompt("Admin login? (y/N) "), "y")
	var identifier string
	if asAdmin {
		identifier = a.prompt("Username: ")
	} else {
		identifier = a.prompt("Email or phone: ")
	}
	password := a.prompt("Password: ")
	if !asAdmin && password != "" {
		fmt.Println("Note: user logins do not verify passwords in this demo.")
	}

	sess, err := auth.Login(a.st, identifier, password, asAdmin)
	switch {
	case errors.Is(err, auth.ErrNotFound):
		fmt.Println("Account not found. Please check your details or register.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		fmt.Println("Invalid admin credentials.")
	case err != nil:
		fmt.Println("Login failed:", err)
	case sess.Admin:
		fmt.Println("Welcome to the admin dashboard.")
	default:
		fmt.Printf("Welcome back, %s.\n", sess.User.Name)
	}
}

func (a *app) register() {
	fmt.Println("\n--- Patient Registration ---")
	in := auth.RegisterInput{
		Name:    a.prompt("Full name: "),
		Phone:   a.prompt("Phone: "),
		Email:   a.prompt("Email: "),
		Address: a.prompt("Address: "),
	}

	fmt.Println("Service interest:")
	for i, s := range model.RegistrationServices {
		fmt.Printf("  %d) %s\n", i+1, s)
	}
	if n, err := strconv.Atoi(a.prompt("> ")); err == nil && n >= 1 && n <= len(model.RegistrationServices) {
		in.Services = model.RegistrationServices[n-1]
	}

	photoPath := a.prompt("Path to photo: ")
	if photoPath != "" {
		f, err := os.Open(photoPath)
		if err != nil {
			fmt.Println("Could not read photo:", err)
			return
		}
		defer f.Close()
		in.Photo = f
	}

	u, err := auth.Register(a.st, in)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return
	}
	fmt.Println("Registration successful! Your virtual ID card:")
	printIDCard(u)
}

func (a *app) userMenu() {
	u, err := auth.CurrentUser(a.st)
	if err != nil || u == nil {
		fmt.Println("Session lost.")
		_ = auth.Logout(a.st)
		return
	}

	fmt.Printf("\n--- Dashboard: %s (%s) ---\n", u.Name, u.ID)
	fmt.Println("1) View ID card")
	fmt.Println("2) Book free consultation")
	fmt.Println("3) Book a specialty service")
	fmt.Println("4) My appointments")
	fmt.Println("5) Update profile photo")
	fmt.Println("6) Logout")
	switch a.prompt("> ") {
	case "1":
		printIDCard(u)
	case "2":
		a.bookConsultation(u)
	case "3":
		a.bookService(u)
	case "4":
		a.listAppointments(u.ID)
	case "5":
		a.updatePhoto(u)
	case "6":
		if err := auth.Logout(a.st); err != nil {
			fmt.Println("Logout failed:", err)
		}
	}
}

func (a *app) bookConsultation(u *model.User) {
	in := booking.ConsultationInput{
		HealthConcern: a.prompt("Health concern: "),
		PreferredDate: a.prompt("Preferred date (YYYY-MM-DD): "),
		PreferredTime: a.prompt("Preferred time (HH:MM): "),
	}
	appt, err := booking.BookConsultation(a.st, u, in)
	if err != nil {
		fmt.Println("Booking failed:", err)
		return
	}
	fmt.Printf("Consultation %s booked, status %s.\n", appt.ID, appt.Status)
}

func (a *app) bookService(u *model.User) {
	fmt.Println("Available services:")
	for i, s := range booking.Catalog {
		fmt.Printf("  %d) %s\n", i+1, s.Title)
	}
	n, err := strconv.Atoi(a.prompt("> "))
	if err != nil || n < 1 || n > len(booking.Catalog) {
		fmt.Println("Service not found.")
		return
	}
	svc := booking.Catalog[n-1]

	in := booking.ServiceInput{
		ServiceID:       svc.ID,
		ServiceName:     svc.Title,
		HealthCondition: a.prompt("Health condition: "),
		PreferredDate:   a.prompt("Preferred date (YYYY-MM-DD): "),
		PreferredTime:   a.prompt("Preferred time (HH:MM): "),
	}
	fmt.Println("Check the documents you will bring (y/N):")
	for _, req := range svc.Requirements {
		if strings.EqualFold(a.prompt("  "+req+" "), "y") {
			in.Documents = append(in.Documents, req)
		}
	}

	appt, err := booking.BookService(a.st, u, in)
	if err != nil {
		fmt.Println("Booking failed:", err)
		return
	}
	fmt.Printf("%s appointment %s booked, status %s.\n", svc.Title, appt.ID, appt.Status)
}

func (a *app) listAppointments(userID string) {
	appts, err := a.st.AppointmentsForUser(userID)
	if err != nil {
		fmt.Println("Could not load appointments:", err)
		return
	}
	if len(appts) == 0 {
		fmt.Println("No appointments yet.")
		return
	}
	for _, ap := range appts {
		printAppointment(&ap)
	}
}

func (a *app) updatePhoto(u *model.User) {
	path := a.prompt("Path to new photo: ")
	photoURL, err := media.EncodeFile(path)
	if err != nil {
		fmt.Println("Could not read photo:", err)
		return
	}
	ok, err := a.st.UpdateUser(u.ID, model.UserPatch{PhotoURL: &photoURL})
	if err != nil {
		fmt.Println("Update failed:", err)
		return
	}
	if !ok {
		fmt.Println("Your record no longer exists.")
		return
	}
	fmt.Println("Photo updated.")
}

func (a *app) adminMenu() {
	fmt.Println("\n--- Admin Dashboard ---")
	fmt.Println("1) Registered users")
	fmt.Println("2) View user")
	fmt.Println("3) All appointments")
	fmt.Println("4) Change admin credentials")
	fmt.Println("5) Logout")
	switch a.prompt("> ") {
	case "1":
		users, err := a.st.Users()
		if err != nil {
			fmt.Println("Could not load users:", err)
			return
		}
		for _, u := range users {
			fmt.Printf("%-10s %-24s %-28s %s\n", u.ID, u.Name, u.Email, u.Services)
		}
		fmt.Printf("%d user(s)\n", len(users))
	case "2":
		u, err := a.st.UserByID(a.prompt("User ID: "))
		if err != nil {
			fmt.Println("Lookup failed:", err)
			return
		}
		if u == nil {
			fmt.Println("User not found.")
			return
		}
		printIDCard(u)
		a.listAppointments(u.ID)
	case "3":
		appts, err := a.st.Appointments()
		if err != nil {
			fmt.Println("Could not load appointments:", err)
			return
		}
		for _, ap := range appts {
			printAppointment(&ap)
		}
		fmt.Printf("%d appointment(s)\n", len(appts))
	case "4":
		err := auth.UpdateAdminCredentials(a.st,
			a.prompt("New username: "),
			a.prompt("New password: "),
		)
		if err != nil {
			fmt.Println("Update failed:", err)
			return
		}
		fmt.Println("Credentials updated.")
	case "5":
		if err := auth.Logout(a.st); err != nil {
			fmt.Println("Logout failed:", err)
		}
	}
}

func printIDCard(u *model.User) {
	fmt.Println("+--------------------------------------------+")
	fmt.Println("|        GLOBAL HEALTH  PATIENT ID CARD      |")
	fmt.Printf("| ID:      %-33s |\n", u.ID)
	fmt.Printf("| Name:    %-33s |\n", u.Name)
	fmt.Printf("| Phone:   %-33s |\n", u.Phone)
	fmt.Printf("| Email:   %-33s |\n", u.Email)
	fmt.Printf("| Service: %-33s |\n", u.Services)
	fmt.Printf("| Since:   %-33s |\n", u.RegistrationDate.Format("2006-01-02"))
	fmt.Println("+--------------------------------------------+")
}

func printAppointment(a *model.Appointment) {
	kind := a.ServiceName
	detail := a.HealthCondition
	if a.IsConsultation() {
		kind = "Consultation"
		detail = a.HealthConcern
	}
	fmt.Printf("%-12s %-14s %s %s  [%s]  %s\n",
		a.ID, kind, a.PreferredDate, a.PreferredTime, a.Status, detail)
}
