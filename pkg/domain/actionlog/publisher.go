package actionlog

import "context"

// Publisher streams ledger entries to downstream consumers. Publishing is
// best effort and never fails the workflow action.
//
//go:generate mockery --name=Publisher --dir=. --output=./mocks --filename=publisher_mock.go --case=underscore
type Publisher interface {
	Publish(ctx context.Context, entry *ActionLog)
}
