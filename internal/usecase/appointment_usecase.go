package usecase

import (
	"context"
	"errors"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

const appointmentEntityName = "appointment"

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID string, req dto.AppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	newID           func() string
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		newID:           uuid.NewString,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// CreateAppointment stores a new appointment.
//
// The generated id is only a default: caller fields are overlaid on top of it
// (an explicit "id" wins), then status is forced to upcoming whatever the
// caller sent. Patient and doctor ids are not checked against the directory.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{ID: u.newID()}
	appointment.Apply(converter.AppointmentRequestToPatch(req))
	appointment.SetStatus(entity.AppointmentStatusUpcoming)

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created := converter.AppointmentToResponse(appointment)

	// Audit failures never fail the request
	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, appointmentEntityName, appointment.ID, created); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment created: id=%s", appointment.ID)
	return created, nil
}

// UpdateAppointment shallow-merges req into the first appointment whose id
// matches. Keys not present in req are left untouched. The audit entry is
// written while the record is still locked, so entries follow the order in
// which updates were applied.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, req dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	patch := converter.AppointmentRequestToPatch(req)

	appointment, err := u.appointmentRepo.Update(ctx, appointmentID, func(a *entity.Appointment) {
		before := a.Clone()
		a.Apply(patch)
		after := a.Clone()

		// Keyed by the stored id, which the patch may have replaced
		oldValue := converter.AppointmentToResponse(&before)
		newValue := converter.AppointmentToResponse(&after)
		if err := u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, appointmentEntityName, after.ID, oldValue, newValue); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		u.log.Debugf("Appointment %q not found", appointmentID)
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment updated: id=%s", appointment.ID)
	return converter.AppointmentToResponse(appointment), nil
}
