package ports

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
)

type StatsAPI interface {
	ListResets(ctx context.Context) ([]domain.Reset, error)
	GetLeaderboard(ctx context.Context, reset domain.ResetID) ([]domain.LeaderboardEntry, error)
	GetJumpGateAssignments(ctx context.Context, reset domain.ResetID) ([]domain.JumpGateAssignment, error)
	GetConstructionProgress(ctx context.Context, reset domain.ResetID) ([]domain.ConstructionProgressEntry, error)
	GetHistory(ctx context.Context, reset domain.ResetID, agents []domain.AgentSymbol) ([]domain.AgentHistory, error)
	GetAllTimeRanks(ctx context.Context) ([]domain.RankedEntry, error)
}
