package models

// ServiceCategory describes one entry of the fixed category catalog.
type ServiceCategory struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

// ServiceCategories is the fixed catalog mapping a category key to the
// services a queue in that category can offer. Configuration, not user data.
var ServiceCategories = map[string]ServiceCategory{
	"library": {
		Name:     "Library Services",
		Services: []string{"Borrow Book", "Return Book", "Research Help", "Computer Access", "Study Room Booking"},
	},
	"canteen": {
		Name:     "Canteen Services",
		Services: []string{"Order Food", "Pick Up Order", "Special Diet Request", "Feedback", "Catering Inquiry"},
	},
	"academic": {
		Name:     "Academic Office",
		Services: []string{"Transcript Request", "Certificate Collection", "Enrollment", "Fee Payment", "Document Verification"},
	},
}

// CategoryServices returns a fresh copy of the service list for category,
// or false when the category key is unknown.
func CategoryServices(category string) ([]string, bool) {
	cat, ok := ServiceCategories[category]
	if !ok {
		return nil, false
	}
	services := make([]string, len(cat.Services))
	copy(services, cat.Services)
	return services, true
}
