package actionlog

import (
	"context"

	"github.com/NeuralTrust/MaskFlow/pkg/pagination"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore
type Repository interface {
	Save(ctx context.Context, entry *ActionLog) error
	ListByObject(ctx context.Context, object string, page pagination.Pagination) ([]*ActionLog, int64, error)
}
