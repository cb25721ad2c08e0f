package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

type stubDoctorUsecase struct {
	err error
}

func (s stubDoctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	return nil, s.err
}

func (s stubDoctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	return nil, s.err
}

type stubAppointmentUsecase struct {
	err      error
	received dto.AppointmentRequest
}

func (s *stubAppointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return nil, s.err
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	s.received = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AppointmentResponse{ID: "new"}, nil
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, req dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	s.received = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AppointmentResponse{ID: appointmentID}, nil
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestDoctorHandler_InternalError(t *testing.T) {
	h := NewDoctorHandler(stubDoctorUsecase{err: errStore}, response.NotFoundAsPayload)

	rec := httptest.NewRecorder()
	h.GetAllDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get doctors", errorBody(t, rec))
}

func TestDoctorHandler_NotFoundPolicy(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/doctors/x", nil), map[string]string{"doctor_id": "x"})

	rec := httptest.NewRecorder()
	NewDoctorHandler(stubDoctorUsecase{err: usecase.ErrDoctorNotFound}, response.NotFoundAsPayload).GetDoctor(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Doctor not found", errorBody(t, rec))

	rec = httptest.NewRecorder()
	NewDoctorHandler(stubDoctorUsecase{err: usecase.ErrDoctorNotFound}, response.NotFoundAsStatus).GetDoctor(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppointmentHandler_PassesBodyThrough(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, response.NotFoundAsPayload)

	body := bytes.NewBufferString(`{"patientId":"pat1","priority":3,"tags":["a"]}`)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.AppointmentRequest{
		"patientId": "pat1",
		"priority":  json.Number("3"),
		"tags":      []interface{}{"a"},
	}, stub.received)
}

func TestAppointmentHandler_UpdateUsesPathID(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, response.NotFoundAsPayload)

	req := httptest.NewRequest(http.MethodPut, "/api/appointments/apt9", bytes.NewBufferString(`{}`))
	req = mux.SetURLVars(req, map[string]string{"appointment_id": "apt9"})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "apt9", body["id"])
}

func TestAppointmentHandler_InternalErrors(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{err: errStore}, response.NotFoundAsPayload)

	rec := httptest.NewRecorder()
	h.GetAllAppointments(rec, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.CreateAppointment(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create appointment", errorBody(t, rec))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/appointments/apt1", bytes.NewBufferString(`{}`)), map[string]string{"appointment_id": "apt1"})
	rec = httptest.NewRecorder()
	h.UpdateAppointment(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to update appointment", errorBody(t, rec))
}

func TestAppointmentHandler_RejectsTrailingData(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, response.NotFoundAsPayload)

	for _, body := range []string{`{"patientId":"pat1"} {"x":1}`, `{"patientId":"pat1"}}`, `{} 1`} {
		rec := httptest.NewRecorder()
		h.CreateAppointment(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
		assert.Nil(t, stub.received, body)
	}

	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString("{\"patientId\":\"pat1\"}\n\t ")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppointmentHandler_InvalidBody(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, response.NotFoundAsPayload)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/appointments/apt1", bytes.NewBufferString(`"text"`)), map[string]string{"appointment_id": "apt1"})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid request body", errorBody(t, rec))
	assert.Nil(t, stub.received)
}
