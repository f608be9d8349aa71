package masking

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"golang.org/x/sync/singleflight"
)

// EligibilityChecker reads the retry and approve flags for an object.
//
// Check is for rendering: overlapping calls share one request to Protecto.
// Fresh always issues its own request with the caller's context and is what
// gated actions use.
//
//go:generate mockery --name=EligibilityChecker --dir=. --output=./mocks --filename=eligibility_checker_mock.go --case=underscore
type EligibilityChecker interface {
	Check(ctx context.Context, object string) (masking.Eligibility, error)
	Fresh(ctx context.Context, object string) (masking.Eligibility, error)
}

type eligibilityChecker struct {
	client protecto.Client
	group  singleflight.Group
}

func NewEligibilityChecker(client protecto.Client) EligibilityChecker {
	return &eligibilityChecker{client: client}
}

// Check joins an in-flight lookup for object if there is one. The shared
// request runs detached from any single caller, so a caller that goes away
// only stops waiting.
func (c *eligibilityChecker) Check(ctx context.Context, object string) (masking.Eligibility, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(object, func() (interface{}, error) {
		return c.client.Eligibility(detached, object)
	})

	select {
	case <-ctx.Done():
		return masking.Eligibility{}, fmt.Errorf("failed to check eligibility for %s: %w", object, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return masking.Eligibility{}, fmt.Errorf("failed to check eligibility for %s: %w", object, res.Err)
		}
		eligibility, ok := res.Val.(*masking.Eligibility)
		if !ok || eligibility == nil {
			return masking.Eligibility{}, nil
		}
		return *eligibility, nil
	}
}

func (c *eligibilityChecker) Fresh(ctx context.Context, object string) (masking.Eligibility, error) {
	eligibility, err := c.client.Eligibility(ctx, object)
	if err != nil {
		return masking.Eligibility{}, fmt.Errorf("failed to check eligibility for %s: %w", object, err)
	}
	if eligibility == nil {
		return masking.Eligibility{}, nil
	}
	return *eligibility, nil
}
