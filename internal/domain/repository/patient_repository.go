package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Count(ctx context.Context) (int, error)
}
