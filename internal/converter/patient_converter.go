package converter

import (
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
)

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, p := range patients {
		history := p.MedicalHistory
		if history == nil {
			history = []string{}
		}
		responses[i] = dto.PatientResponse{
			ID:             p.ID,
			Name:           p.Name,
			Email:          p.Email,
			Phone:          p.Phone,
			Age:            p.Age,
			Gender:         p.Gender,
			MedicalHistory: history,
		}
	}
	return responses
}
