package converter

import (
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		DoctorSpecialty: appointment.DoctorSpecialty,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Status:          appointment.Status,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		Extra:           appointment.Extra,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentRequestToPatch converts a request body into an entity overlay
func AppointmentRequestToPatch(req dto.AppointmentRequest) entity.AppointmentPatch {
	patch := make(entity.AppointmentPatch, len(req))
	for k, v := range req {
		patch[k] = v
	}
	return patch
}
