package handler

import (
	"errors"
	"net/http"

	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	notFound      response.NotFoundPolicy
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, notFound response.NotFoundPolicy) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		notFound:      notFound,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), vars["doctor_id"])
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			h.notFound.Write(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, doctor)
}
