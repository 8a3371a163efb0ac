package ai

import "strings"

// GeneralSpecialization is the fallback label when classification fails,
// returns nothing, or returns something outside the known set.
const GeneralSpecialization = "General"

// Specializations is the fixed label set the classifier may choose from.
var Specializations = []string{
	GeneralSpecialization,
	"Cardiology",
	"Dermatology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Oncology",
	"Gynecology",
	"Urology",
	"Ophthalmology",
	"Otolaryngology",
	"Gastroenterology",
	"Endocrinology",
	"Pulmonology",
	"Nephrology",
	"Rheumatology",
	"Hematology",
	"Infectious Disease",
	"Dentistry",
}

var specializationsByLower = func() map[string]string {
	m := make(map[string]string, len(Specializations))
	for _, s := range Specializations {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// CanonicalSpecialization maps a model reply onto the fixed label set,
// tolerating case and surrounding noise. The second return is false when
// the reply matches nothing.
func CanonicalSpecialization(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, ".\"'`*")
	if s, ok := specializationsByLower[strings.ToLower(cleaned)]; ok {
		return s, true
	}
	return "", false
}
