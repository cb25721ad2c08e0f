package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorApplyDefaults(t *testing.T) {
	d := Doctor{ID: "doc9", Rating: 4.9}
	d.ApplyDefaults()

	assert.Equal(t, 4.9, d.Rating)
	assert.Equal(t, DefaultDoctorExperience, d.Experience)
	assert.NotNil(t, d.Availability)

	var empty Doctor
	empty.ApplyDefaults()
	assert.Equal(t, DefaultDoctorRating, empty.Rating)
}

func TestDoctorClone_DoesNotShareSlots(t *testing.T) {
	d := Doctor{Availability: []Availability{{Day: "Monday", Slots: []string{"09:00"}}}}

	clone := d.Clone()
	clone.Availability[0].Slots[0] = "10:00"

	assert.Equal(t, "09:00", d.Availability[0].Slots[0])
}
