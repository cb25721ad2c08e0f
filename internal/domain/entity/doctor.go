package entity

const (
	DefaultDoctorRating     = 4.5
	DefaultDoctorExperience = 5
)

// Doctor is a practitioner listed in the directory. Doctors are seeded at
// startup and never mutated afterwards.
type Doctor struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Specialty    string         `json:"specialty"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Rating       float64        `json:"rating"`
	Experience   int            `json:"experience"`
	Availability []Availability `json:"availability"`
	Image        string         `json:"image"`
}

// ApplyDefaults fills rating and experience when they were left unset.
func (d *Doctor) ApplyDefaults() {
	if d.Rating == 0 {
		d.Rating = DefaultDoctorRating
	}
	if d.Experience == 0 {
		d.Experience = DefaultDoctorExperience
	}
	if d.Availability == nil {
		d.Availability = []Availability{}
	}
}

// Clone returns a copy that shares no slices with d.
func (d Doctor) Clone() Doctor {
	out := d
	out.Availability = make([]Availability, len(d.Availability))
	for i, a := range d.Availability {
		out.Availability[i] = a.Clone()
	}
	return out
}
