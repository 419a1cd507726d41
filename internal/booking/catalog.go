package booking

// Service describes a bookable portal service and the documents a patient
// should bring. The requirement names double as the strings stored in an
// appointment's documents field when checked off.
type Service struct {
	ID           string
	Title        string
	Requirements []string
}

// Catalog lists the portal services in display order.
var Catalog = []Service{
	{
		ID:    "cardiology",
		Title: "Cardiology",
		Requirements: []string{
			"Previous cardiac reports (if any)",
			"List of current medications",
			"Recent blood work results",
			"Family history of heart disease",
		},
	},
	{
		ID:    "diabetes",
		Title: "Diabetes Care",
		Requirements: []string{
			"Recent blood glucose readings",
			"HbA1c test results (if available)",
			"Current medication list",
			"Food diary (optional but helpful)",
		},
	},
	{
		ID:    "oncology",
		Title: "Oncology",
		Requirements: []string{
			"Previous diagnosis reports",
			"Imaging scans (X-rays, CT, MRI, PET)",
			"Pathology reports",
			"List of current medications and treatments",
		},
	},
	{
		ID:    "health_checkup",
		Title: "Health Checkup",
		Requirements: []string{
			"Previous health records (if available)",
			"List of any current medications",
			"8-12 hours fasting (for blood tests)",
			"Any symptoms or concerns to discuss",
		},
	},
	{
		ID:    "special_care",
		Title: "Special Care",
		Requirements: []string{
			"Detailed medical history",
			"Previous specialist reports",
			"Current medication list",
			"Recent test results",
		},
	},
	{
		ID:    "lab_testing",
		Title: "Lab Testing",
		Requirements: []string{
			"Doctor's prescription/referral (if applicable)",
			"8-12 hours fasting (for certain tests)",
			"Previous test results (if available)",
			"Information about any medications that might affect results",
		},
	},
	{
		ID:    "vaccinations",
		Title: "Vaccinations",
		Requirements: []string{
			"Immunization records",
			"Information about allergies",
			"Details of previous vaccine reactions (if any)",
			"Travel itinerary (for travel vaccines)",
		},
	},
	{
		ID:    "chronic_care",
		Title: "Chronic Care",
		Requirements: []string{
			"Detailed medical history",
			"List of current medications",
			"Recent test results",
			"Specialist reports (if available)",
		},
	},
	{
		ID:    "pharmacy",
		Title: "Pharmacy",
		Requirements: []string{
			"Valid prescription",
			"Insurance card (if applicable)",
			"List of current medications",
			"Information about allergies",
		},
	},
}

// ServiceByID looks up a catalog entry. Returns nil for unknown ids.
func ServiceByID(id string) *Service {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
