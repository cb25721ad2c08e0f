package usecase

import (
	"context"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AvailabilityUsed is reported as a fixed percentage; no slot accounting
// backs it.
const AvailabilityUsed = 75

type StatsUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewStatsUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) StatsUsecase {
	return &statsUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetStats counts the current in-memory state. "Today" appointments are all
// appointments still upcoming; their dates are not compared to the clock.
func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	totalPatients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	totalDoctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.CountByStatus(ctx, entity.AppointmentStatusUpcoming)
	if err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	return &dto.StatsResponse{
		TotalPatients:     totalPatients,
		TotalDoctors:      totalDoctors,
		TodayAppointments: upcoming,
		AvailabilityUsed:  AvailabilityUsed,
	}, nil
}
