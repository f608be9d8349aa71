package repository

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/pagination"
	"gorm.io/gorm"
)

type actionLogRepository struct {
	db *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) actionlog.Repository {
	return &actionLogRepository{
		db: db,
	}
}

func (r *actionLogRepository) Save(ctx context.Context, entry *actionlog.ActionLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save action log: %w", err)
	}
	return nil
}

// ListByObject returns the newest entries first.
func (r *actionLogRepository) ListByObject(
	ctx context.Context,
	object string,
	page pagination.Pagination,
) ([]*actionlog.ActionLog, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&actionlog.ActionLog{}).Where("object = ?", object)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count action logs: %w", err)
	}

	entries := make([]*actionlog.ActionLog, 0, page.Limit())
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list action logs: %w", err)
	}
	return entries, total, nil
}

// noopActionLogRepository is used when no database is configured; the
// event stream still carries every action.
type noopActionLogRepository struct{}

func NewNoopActionLogRepository() actionlog.Repository {
	return noopActionLogRepository{}
}

func (noopActionLogRepository) Save(context.Context, *actionlog.ActionLog) error {
	return nil
}

func (noopActionLogRepository) ListByObject(context.Context, string, pagination.Pagination) ([]*actionlog.ActionLog, int64, error) {
	return []*actionlog.ActionLog{}, 0, nil
}
