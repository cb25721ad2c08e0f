package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"medical-appointment-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_CreateAppends(t *testing.T) {
	repo := NewAppointmentRepository(SeedAppointments())
	ctx := context.Background()

	apt := entity.Appointment{ID: "new", PatientID: entity.StringPtr("pat1")}
	require.NoError(t, repo.Create(ctx, &apt))

	apt.PatientID = entity.StringPtr("mutated after create")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "new", all[3].ID)
	assert.Equal(t, "pat1", *all[3].PatientID)
}

func TestAppointmentRepository_Update(t *testing.T) {
	repo := NewAppointmentRepository(SeedAppointments())
	ctx := context.Background()

	updated, err := repo.Update(ctx, "apt1", func(a *entity.Appointment) {
		a.Apply(entity.AppointmentPatch{"notes": "done"})
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "done", *updated.Notes)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", *all[0].Notes)
}

func TestAppointmentRepository_UpdateUnknownLeavesCollection(t *testing.T) {
	repo := NewAppointmentRepository(SeedAppointments())
	ctx := context.Background()

	before, err := repo.FindAll(ctx)
	require.NoError(t, err)

	called := false
	updated, err := repo.Update(ctx, "nope", func(a *entity.Appointment) { called = true })
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.False(t, called)

	after, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppointmentRepository_CountByStatus(t *testing.T) {
	repo := NewAppointmentRepository(SeedAppointments())
	ctx := context.Background()

	upcoming, err := repo.CountByStatus(ctx, entity.AppointmentStatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, 2, upcoming)

	completed, err := repo.CountByStatus(ctx, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
}

func TestAppointmentRepository_ConcurrentWriters(t *testing.T) {
	repo := NewAppointmentRepository(SeedAppointments())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			apt := entity.Appointment{ID: fmt.Sprintf("c%d", i)}
			apt.SetStatus(entity.AppointmentStatusUpcoming)
			assert.NoError(t, repo.Create(ctx, &apt))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, "apt2", func(a *entity.Appointment) {
				a.Apply(entity.AppointmentPatch{"notes": fmt.Sprintf("n%d", i)})
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 53)

	upcoming, err := repo.CountByStatus(ctx, entity.AppointmentStatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, 52, upcoming)
}
