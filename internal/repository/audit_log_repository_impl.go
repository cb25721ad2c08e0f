package repository

import (
	"context"
	"sync"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"
)

// auditLogRepository retains at most capacity entries, dropping the oldest.
// IDs keep increasing across drops.
type auditLogRepository struct {
	mu       sync.RWMutex
	logs     []entity.AuditLog
	capacity int
	nextID   int64
}

func NewAuditLogRepository(capacity int) domainRepo.AuditLogRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &auditLogRepository{capacity: capacity, nextID: 1}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = r.nextID
	r.nextID++

	if len(r.logs) == r.capacity {
		copy(r.logs, r.logs[1:])
		r.logs = r.logs[:len(r.logs)-1]
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.AuditLog{}, r.logs...), nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.logs {
		if l.ID == id {
			log := l
			return &log, nil
		}
	}
	return nil, nil
}
