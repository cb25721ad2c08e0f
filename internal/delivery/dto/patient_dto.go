package dto

// PatientResponse represents a patient in responses
type PatientResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	MedicalHistory []string `json:"medicalHistory"`
}
