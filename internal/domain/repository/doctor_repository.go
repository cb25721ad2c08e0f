package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	Count(ctx context.Context) (int, error)
}
