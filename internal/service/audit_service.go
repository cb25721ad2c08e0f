package service

import (
	"context"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error {
	return s.record(ctx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.record(ctx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) record(ctx context.Context, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	s.log.WithFields(logrus.Fields{
		"audit_id":  auditLog.ID,
		"action":    action,
		"entity":    metadata["entity"],
		"entity_id": metadata["entity_id"],
	}).Info("Audit log recorded")

	return nil
}
