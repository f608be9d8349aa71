package ledger

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/pagination"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore
type Finder interface {
	ListByObject(ctx context.Context, object string, page pagination.Pagination) (*pagination.Result[*actionlog.ActionLog], error)
}

type finder struct {
	repo actionlog.Repository
}

func NewFinder(repo actionlog.Repository) Finder {
	return &finder{repo: repo}
}

func (f *finder) ListByObject(
	ctx context.Context,
	object string,
	page pagination.Pagination,
) (*pagination.Result[*actionlog.ActionLog], error) {
	entries, total, err := f.repo.ListByObject(ctx, object, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for %s: %w", object, err)
	}
	result := pagination.NewResult(entries, total, page)
	return &result, nil
}
