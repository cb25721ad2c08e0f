package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
)

// AppointmentMutation edits an appointment in place while the repository
// holds its write lock.
type AppointmentMutation func(appointment *entity.Appointment)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	// Update applies mutate to the first appointment with the given id and
	// returns a copy of the result. It returns nil when no appointment matches.
	Update(ctx context.Context, id string, mutate AppointmentMutation) (*entity.Appointment, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
