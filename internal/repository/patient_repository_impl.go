package repository

import (
	"context"
	"sync"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"
)

type patientRepository struct {
	mu       sync.RWMutex
	patients []entity.Patient
}

func NewPatientRepository(seed []entity.Patient) domainRepo.PatientRepository {
	patients := make([]entity.Patient, len(seed))
	for i, p := range seed {
		patients[i] = p.Clone()
	}
	return &patientRepository{patients: patients}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]entity.Patient, len(r.patients))
	for i, p := range r.patients {
		patients[i] = p.Clone()
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients), nil
}
