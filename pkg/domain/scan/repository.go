package scan

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore
type Repository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
