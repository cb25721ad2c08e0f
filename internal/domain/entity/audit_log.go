package entity

import "time"

// AuditLog is one entry of the in-memory trail of appointment mutations.
type AuditLog struct {
	ID        int64
	Action    string
	Metadata  JSON
	CreatedAt time.Time
}

// JSON holds free-form audit metadata
type JSON map[string]interface{}

// Common audit actions
const (
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
)
