package masking

import (
	"context"
)

//go:generate mockery --name=ReviewRepository --dir=. --output=./mocks --filename=review_repository_mock.go --case=underscore
type ReviewRepository interface {
	Save(ctx context.Context, session *ReviewSession) error
	Get(ctx context.Context, id string) (*ReviewSession, error)
	Delete(ctx context.Context, id string) error
}
