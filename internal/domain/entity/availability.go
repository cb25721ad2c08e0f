package entity

// Availability lists the bookable time slots of a doctor on one weekday.
type Availability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

func (a Availability) Clone() Availability {
	return Availability{
		Day:   a.Day,
		Slots: append([]string{}, a.Slots...),
	}
}
