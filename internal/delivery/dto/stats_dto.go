package dto

type StatsResponse struct {
	TotalPatients     int `json:"totalPatients"`
	TotalDoctors      int `json:"totalDoctors"`
	TodayAppointments int `json:"todayAppointments"`
	AvailabilityUsed  int `json:"availabilityUsed"`
}
