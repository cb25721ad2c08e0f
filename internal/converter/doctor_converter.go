package converter

import (
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Email:        doctor.Email,
		Phone:        doctor.Phone,
		Rating:       doctor.Rating,
		Experience:   doctor.Experience,
		Image:        doctor.Image,
		Availability: AvailabilitiesToResponses(doctor.Availability),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
