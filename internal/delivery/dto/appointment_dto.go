package dto

import "encoding/json"

// Request DTOs

// AppointmentRequest is the body of create and update. Any JSON object is
// accepted; keys are applied as a sparse overlay onto the stored record.
type AppointmentRequest map[string]interface{}

// Response DTOs

// AppointmentResponse serializes only the fields that are set, followed by
// any extra keys the record carries.
type AppointmentResponse struct {
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

func (r AppointmentResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Extra)+11)
	for k, v := range r.Extra {
		out[k] = v
	}

	out["id"] = r.ID
	putString(out, "patientId", r.PatientID)
	putString(out, "patientName", r.PatientName)
	putString(out, "doctorId", r.DoctorID)
	putString(out, "doctorName", r.DoctorName)
	putString(out, "doctorSpecialty", r.DoctorSpecialty)
	putString(out, "date", r.Date)
	putString(out, "time", r.Time)
	putString(out, "status", r.Status)
	putString(out, "symptoms", r.Symptoms)
	putString(out, "notes", r.Notes)

	return json.Marshal(out)
}

func putString(out map[string]interface{}, key string, value *string) {
	if value != nil {
		out[key] = *value
	}
}
