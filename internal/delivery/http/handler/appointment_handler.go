package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	notFound           response.NotFoundPolicy
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, notFound response.NotFoundPolicy) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		notFound:           notFound,
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAppointmentRequest(r)
	if !ok {
		response.InvalidBody(w)
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req, ok := decodeAppointmentRequest(r)
	if !ok {
		response.InvalidBody(w)
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), vars["appointment_id"], req)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			h.notFound.Write(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to update appointment")
		return
	}

	response.Success(w, appointment)
}

// decodeAppointmentRequest accepts exactly one JSON object. Arrays, scalars,
// null, malformed JSON and trailing values are rejected. Numbers are kept as
// json.Number so large integers round-trip unchanged.
func decodeAppointmentRequest(r *http.Request) (dto.AppointmentRequest, bool) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req dto.AppointmentRequest
	if err := dec.Decode(&req); err != nil {
		return nil, false
	}
	if req == nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return req, true
}
