package repository

import "medical-appointment-api/internal/domain/entity"

// SeedDoctors returns the fixed doctor directory loaded at startup.
func SeedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:         "doc1",
			Name:       "Dr. Sarah Johnson",
			Specialty:  "Cardiology",
			Email:      "sarah.j@hospital.com",
			Phone:      "+1-555-0101",
			Rating:     4.8,
			Experience: 12,
			Image:      "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
			Availability: []entity.Availability{
				{Day: "Monday", Slots: []string{"09:00", "10:00", "14:00"}},
				{Day: "Wednesday", Slots: []string{"09:00", "11:00", "15:00"}},
			},
		},
		{
			ID:         "doc2",
			Name:       "Dr. Michael Chen",
			Specialty:  "Neurology",
			Email:      "michael.c@hospital.com",
			Phone:      "+1-555-0102",
			Rating:     4.9,
			Experience: 15,
			Image:      "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
			Availability: []entity.Availability{
				{Day: "Tuesday", Slots: []string{"10:00", "11:00", "16:00"}},
				{Day: "Thursday", Slots: []string{"09:00", "13:00", "14:00"}},
			},
		},
		{
			ID:         "doc3",
			Name:       "Dr. Emily Rodriguez",
			Specialty:  "Pediatrics",
			Email:      "emily.r@hospital.com",
			Phone:      "+1-555-0103",
			Rating:     4.7,
			Experience: 8,
			Image:      "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400",
			Availability: []entity.Availability{
				{Day: "Monday", Slots: []string{"08:00", "09:00", "10:00"}},
				{Day: "Friday", Slots: []string{"14:00", "15:00", "16:00"}},
			},
		},
		{
			ID:         "doc4",
			Name:       "Dr. James Wilson",
			Specialty:  "Orthopedics",
			Email:      "james.w@hospital.com",
			Phone:      "+1-555-0104",
			Rating:     4.6,
			Experience: 10,
			Image:      "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400",
			Availability: []entity.Availability{
				{Day: "Wednesday", Slots: []string{"10:00", "11:00", "15:00"}},
				{Day: "Thursday", Slots: []string{"09:00", "10:00", "14:00"}},
			},
		},
	}
}

// SeedPatients returns the fixed patient list loaded at startup.
func SeedPatients() []entity.Patient {
	return []entity.Patient{
		{ID: "pat1", Name: "John Doe", Email: "john.doe@email.com", Phone: "+1-555-1001", Age: 45, Gender: entity.GenderMale, MedicalHistory: []string{"Hypertension", "Diabetes"}},
		{ID: "pat2", Name: "Jane Smith", Email: "jane.smith@email.com", Phone: "+1-555-1002", Age: 32, Gender: entity.GenderFemale, MedicalHistory: []string{"Asthma"}},
		{ID: "pat3", Name: "Robert Brown", Email: "robert.b@email.com", Phone: "+1-555-1003", Age: 58, Gender: entity.GenderMale, MedicalHistory: []string{"Heart Disease"}},
	}
}

// SeedAppointments returns the three appointments present at startup.
func SeedAppointments() []entity.Appointment {
	return []entity.Appointment{
		seedAppointment("apt1", "pat1", "John Doe", "doc1", "Dr. Sarah Johnson", "Cardiology",
			"2025-01-20", "09:00", entity.AppointmentStatusUpcoming, "Chest pain, shortness of breath", ""),
		seedAppointment("apt2", "pat2", "Jane Smith", "doc3", "Dr. Emily Rodriguez", "Pediatrics",
			"2025-01-21", "10:00", entity.AppointmentStatusUpcoming, "Regular checkup", ""),
		seedAppointment("apt3", "pat3", "Robert Brown", "doc1", "Dr. Sarah Johnson", "Cardiology",
			"2025-01-15", "14:00", entity.AppointmentStatusCompleted, "Follow-up consultation", "Patient is responding well to treatment"),
	}
}

func seedAppointment(id, patientID, patientName, doctorID, doctorName, specialty, date, time, status, symptoms, notes string) entity.Appointment {
	return entity.Appointment{
		ID:              id,
		PatientID:       entity.StringPtr(patientID),
		PatientName:     entity.StringPtr(patientName),
		DoctorID:        entity.StringPtr(doctorID),
		DoctorName:      entity.StringPtr(doctorName),
		DoctorSpecialty: entity.StringPtr(specialty),
		Date:            entity.StringPtr(date),
		Time:            entity.StringPtr(time),
		Status:          entity.StringPtr(status),
		Symptoms:        entity.StringPtr(symptoms),
		Notes:           entity.StringPtr(notes),
	}
}
