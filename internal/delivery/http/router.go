package http

import (
	"net/http"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/delivery/http/handler"
	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

const apiGreeting = "Medical Appointment System API"

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	statsHandler       *handler.StatsHandler
	auditLogHandler    *handler.AuditLogHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		statsHandler:       statsHandler,
		auditLogHandler:    auditLogHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers every route and returns the fully wrapped handler.
// CORS wraps the router itself so preflight requests are answered before
// method matching.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/api", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/", r.healthCheck).Methods(http.MethodGet)

	// Directory
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctor_id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointment_id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)

	api.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.loggingMiddleware.Recover(h)
	h = r.loggingMiddleware.Handle(h)
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, dto.MessageResponse{Message: apiGreeting})
}
