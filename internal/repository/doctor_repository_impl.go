package repository

import (
	"context"
	"sync"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"
)

type doctorRepository struct {
	mu      sync.RWMutex
	doctors []entity.Doctor
}

func NewDoctorRepository(seed []entity.Doctor) domainRepo.DoctorRepository {
	doctors := make([]entity.Doctor, len(seed))
	for i, d := range seed {
		doctors[i] = d.Clone()
		doctors[i].ApplyDefaults()
	}
	return &doctorRepository{doctors: doctors}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doctors := make([]entity.Doctor, len(r.doctors))
	for i, d := range r.doctors {
		doctors[i] = d.Clone()
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.doctors {
		if d.ID == id {
			doctor := d.Clone()
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doctors), nil
}
