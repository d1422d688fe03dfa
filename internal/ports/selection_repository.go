package ports

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
)

type SelectionRepository interface {
	Get(ctx context.Context, reset domain.ResetID) (domain.AgentSelection, error)
	Save(ctx context.Context, reset domain.ResetID, selection domain.AgentSelection) error
	Delete(ctx context.Context, reset domain.ResetID) error
}
