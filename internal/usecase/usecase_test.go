package usecase

import (
	"context"
	"io"
	"testing"

	"medical-appointment-api/internal/repository"
	"medical-appointment-api/internal/service"

	"github.com/sirupsen/logrus"
)

type fixture struct {
	doctors      DoctorUsecase
	patients     PatientUsecase
	appointments *appointmentUsecase
	stats        StatsUsecase
	auditLogs    AuditLogUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	doctorRepo := repository.NewDoctorRepository(repository.SeedDoctors())
	patientRepo := repository.NewPatientRepository(repository.SeedPatients())
	appointmentRepo := repository.NewAppointmentRepository(repository.SeedAppointments())
	auditRepo := repository.NewAuditLogRepository(100)
	auditService := service.NewAuditService(log, auditRepo)

	return &fixture{
		doctors:      NewDoctorUsecase(log, doctorRepo),
		patients:     NewPatientUsecase(log, patientRepo),
		appointments: NewAppointmentUsecase(log, appointmentRepo, auditService).(*appointmentUsecase),
		stats:        NewStatsUsecase(log, doctorRepo, patientRepo, appointmentRepo),
		auditLogs:    NewAuditLogUsecase(log, auditRepo),
	}
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func value(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
