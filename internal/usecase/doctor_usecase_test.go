package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_GetAllDoctors(t *testing.T) {
	f := newFixture(t)

	doctors, err := f.doctors.GetAllDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	assert.Equal(t, 4.8, doctors[0].Rating)
	assert.Equal(t, 12, doctors[0].Experience)
	require.Len(t, doctors[0].Availability, 2)
	assert.Equal(t, "Monday", doctors[0].Availability[0].Day)
}

func TestDoctorUsecase_GetDoctor(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{"doc1", "doc2", "doc3", "doc4"} {
		doctor, err := f.doctors.GetDoctor(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, doctor.ID)
	}

	_, err := f.doctors.GetDoctor(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_RepositoryError(t *testing.T) {
	f := newFixture(t)

	_, err := f.doctors.GetDoctor(cancelledContext(), "doc1")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = f.doctors.GetAllDoctors(cancelledContext())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPatientUsecase_GetAllPatients(t *testing.T) {
	f := newFixture(t)

	patients, err := f.patients.GetAllPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Jane Smith", patients[1].Name)
	assert.Equal(t, 32, patients[1].Age)
	assert.Equal(t, []string{"Asthma"}, patients[1].MedicalHistory)

	_, err = f.patients.GetAllPatients(cancelledContext())
	assert.Error(t, err)
}
