package dto

// Response DTOs

type AvailabilityResponse struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

type DoctorResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Specialty    string                 `json:"specialty"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	Rating       float64                `json:"rating"`
	Experience   int                    `json:"experience"`
	Image        string                 `json:"image"`
	Availability []AvailabilityResponse `json:"availability"`
}
