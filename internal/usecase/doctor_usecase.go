package usecase

import (
	"context"
	"errors"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		u.log.Debugf("Doctor %q not found", doctorID)
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}
