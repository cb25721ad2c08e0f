package entity

import (
	"github.com/spf13/cast"
)

// AppointmentStatus values the system itself assigns. Callers may store any
// other string through an update.
const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCompleted = "completed"
)

// Appointment is a booking between a patient and a doctor.
//
// Optional fields are pointers: nil means the key was never supplied and is
// left out of the wire representation. Keys outside the known shape live in
// Extra. A key is held either by a typed field or by Extra, never both.
type Appointment struct {
	ID              string
	PatientID       *string
	PatientName     *string
	DoctorID        *string
	DoctorName      *string
	DoctorSpecialty *string
	Date            *string
	Time            *string
	Status          *string
	Symptoms        *string
	Notes           *string
	Extra           map[string]interface{}
}

// AppointmentPatch is an arbitrary key/value overlay applied onto an
// Appointment by create and update.
type AppointmentPatch map[string]interface{}

// Appointment field keys as they appear on the wire
const (
	AppointmentKeyID              = "id"
	AppointmentKeyPatientID       = "patientId"
	AppointmentKeyPatientName     = "patientName"
	AppointmentKeyDoctorID        = "doctorId"
	AppointmentKeyDoctorName      = "doctorName"
	AppointmentKeyDoctorSpecialty = "doctorSpecialty"
	AppointmentKeyDate            = "date"
	AppointmentKeyTime            = "time"
	AppointmentKeyStatus          = "status"
	AppointmentKeySymptoms        = "symptoms"
	AppointmentKeyNotes           = "notes"
)

// AppointmentFieldKeys lists the typed optional fields in wire order.
var AppointmentFieldKeys = []string{
	AppointmentKeyPatientID,
	AppointmentKeyPatientName,
	AppointmentKeyDoctorID,
	AppointmentKeyDoctorName,
	AppointmentKeyDoctorSpecialty,
	AppointmentKeyDate,
	AppointmentKeyTime,
	AppointmentKeyStatus,
	AppointmentKeySymptoms,
	AppointmentKeyNotes,
}

// Field returns the typed slot for a wire key, or nil for keys outside the
// known shape (including "id").
func (a *Appointment) Field(key string) **string {
	switch key {
	case AppointmentKeyPatientID:
		return &a.PatientID
	case AppointmentKeyPatientName:
		return &a.PatientName
	case AppointmentKeyDoctorID:
		return &a.DoctorID
	case AppointmentKeyDoctorName:
		return &a.DoctorName
	case AppointmentKeyDoctorSpecialty:
		return &a.DoctorSpecialty
	case AppointmentKeyDate:
		return &a.Date
	case AppointmentKeyTime:
		return &a.Time
	case AppointmentKeyStatus:
		return &a.Status
	case AppointmentKeySymptoms:
		return &a.Symptoms
	case AppointmentKeyNotes:
		return &a.Notes
	}
	return nil
}

// Apply shallow-merges patch into a. Known fields take the string form of
// scalar values; null and values that have no string form (objects, arrays)
// are kept verbatim under the same key in Extra, so a null stays on the wire. Unknown keys go to
// Extra as-is. A non-null id that can be read as a string replaces ID.
func (a *Appointment) Apply(patch AppointmentPatch) {
	for key, value := range patch {
		if key == AppointmentKeyID {
			if value == nil {
				continue
			}
			if id, err := cast.ToStringE(value); err == nil {
				a.ID = id
			}
			continue
		}

		field := a.Field(key)
		if field == nil {
			a.setExtra(key, value)
			continue
		}

		if value == nil {
			*field = nil
			a.setExtra(key, nil)
			continue
		}

		s, err := cast.ToStringE(value)
		if err != nil {
			*field = nil
			a.setExtra(key, value)
			continue
		}
		*field = &s
		delete(a.Extra, key)
	}
}

// SetStatus overwrites the status regardless of how it was previously held.
func (a *Appointment) SetStatus(status string) {
	a.Status = &status
	delete(a.Extra, AppointmentKeyStatus)
}

// StatusValue returns the status, or "" when unset.
func (a *Appointment) StatusValue() string {
	if a.Status == nil {
		return ""
	}
	return *a.Status
}

// Clone returns a copy that can be handed out without sharing mutable state.
// Extra values are copied shallowly; they are never mutated in place.
func (a Appointment) Clone() Appointment {
	out := Appointment{ID: a.ID}
	for _, key := range AppointmentFieldKeys {
		if v := *a.Field(key); v != nil {
			s := *v
			*out.Field(key) = &s
		}
	}
	if len(a.Extra) > 0 {
		out.Extra = make(map[string]interface{}, len(a.Extra))
		for k, v := range a.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func (a *Appointment) setExtra(key string, value interface{}) {
	if a.Extra == nil {
		a.Extra = make(map[string]interface{})
	}
	a.Extra[key] = value
}

// StringPtr is a helper for building appointments with literal values.
func StringPtr(s string) *string {
	return &s
}
