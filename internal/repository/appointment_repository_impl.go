package repository

import (
	"context"
	"sync"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"
)

// appointmentRepository keeps appointments in insertion order. Update scans
// and mutates under the same write lock so concurrent requests cannot
// interleave between the lookup and the merge.
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
}

func NewAppointmentRepository(seed []entity.Appointment) domainRepo.AppointmentRepository {
	appointments := make([]entity.Appointment, len(seed))
	for i, a := range seed {
		appointments[i] = a.Clone()
	}
	return &appointmentRepository{appointments: appointments}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]entity.Appointment, len(r.appointments))
	for i, a := range r.appointments {
		appointments[i] = a.Clone()
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, appointment.Clone())
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, mutate domainRepo.AppointmentMutation) (*entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID != id {
			continue
		}
		mutate(&r.appointments[i])
		updated := r.appointments[i].Clone()
		return &updated, nil
	}
	return nil, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.appointments {
		if r.appointments[i].StatusValue() == status {
			count++
		}
	}
	return count, nil
}
