package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every error, including not-found payloads.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func InvalidBody(w http.ResponseWriter) {
	Error(w, http.StatusUnprocessableEntity, "Invalid request body")
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

// NotFoundPolicy decides the status code of a not-found answer. The body is
// always {"error": message}.
type NotFoundPolicy int

const (
	// NotFoundAsPayload answers 200, keeping clients that inspect the body
	// for an "error" key working.
	NotFoundAsPayload NotFoundPolicy = iota
	// NotFoundAsStatus answers 404.
	NotFoundAsStatus
)

func NewNotFoundPolicy(strict bool) NotFoundPolicy {
	if strict {
		return NotFoundAsStatus
	}
	return NotFoundAsPayload
}

func (p NotFoundPolicy) Write(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	if p == NotFoundAsStatus {
		Error(w, http.StatusNotFound, message)
		return
	}
	Error(w, http.StatusOK, message)
}
