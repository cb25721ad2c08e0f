package entity

// Patient is a seeded patient record.
type Patient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	MedicalHistory []string `json:"medicalHistory"`
}

func (p Patient) Clone() Patient {
	out := p
	out.MedicalHistory = append([]string{}, p.MedicalHistory...)
	return out
}

// Gender values used by the seed data
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)
