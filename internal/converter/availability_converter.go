package converter

import (
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
)

func AvailabilitiesToResponses(availability []entity.Availability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(availability))
	for i, a := range availability {
		slots := a.Slots
		if slots == nil {
			slots = []string{}
		}
		responses[i] = dto.AvailabilityResponse{
			Day:   a.Day,
			Slots: slots,
		}
	}
	return responses
}
