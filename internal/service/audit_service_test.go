package service

import (
	"context"
	"io"
	"testing"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogCreate(t *testing.T) {
	repo := repository.NewAuditLogRepository(10)
	svc := NewAuditService(newTestLogger(), repo)
	ctx := context.Background()

	require.NoError(t, svc.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", "apt9", map[string]string{"id": "apt9"}))

	logs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionAppointmentCreate, logs[0].Action)
	assert.Equal(t, "apt9", logs[0].Metadata["entity_id"])
	assert.Nil(t, logs[0].Metadata["old_value"])
	assert.False(t, logs[0].CreatedAt.IsZero())
}

func TestAuditService_LogUpdate(t *testing.T) {
	repo := repository.NewAuditLogRepository(10)
	svc := NewAuditService(newTestLogger(), repo)
	ctx := context.Background()

	require.NoError(t, svc.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, "appointment", "apt1", "old", "new"))

	logs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "old", logs[0].Metadata["old_value"])
	assert.Equal(t, "new", logs[0].Metadata["new_value"])
}

func TestAuditService_PropagatesRepositoryError(t *testing.T) {
	svc := NewAuditService(newTestLogger(), repository.NewAuditLogRepository(10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", "x", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
