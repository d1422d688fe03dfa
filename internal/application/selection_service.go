package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/bnema/spacetraders-stats-cli/internal/ports"
)

// DefaultSelectionSize is how many top agents are selected for a reset
// without a saved selection.
const DefaultSelectionSize = 10

type SelectionService struct {
	repo    ports.SelectionRepository
	service *Service
}

func NewSelectionService(repo ports.SelectionRepository, service *Service) *SelectionService {
	return &SelectionService{repo: repo, service: service}
}

func (s *SelectionService) Get(ctx context.Context, reset domain.ResetID) (SelectionView, error) {
	selection, err := s.repo.Get(ctx, reset)
	if err == nil {
		return toSelectionView(reset, selection, true), nil
	}
	if !errors.Is(err, domain.ErrSelectionNotFound) {
		return SelectionView{}, fmt.Errorf("load selection: %w", err)
	}

	entries, err := s.service.api.GetLeaderboard(ctx, reset)
	if err != nil {
		return SelectionView{}, err
	}

	return toSelectionView(reset, domain.DefaultSelection(entries, DefaultSelectionSize), false), nil
}

// Add resolves queries against the reset's leaderboard and saves the merged
// selection. An unsaved default selection is the starting point.
func (s *SelectionService) Add(ctx context.Context, reset domain.ResetID, queries []string) (SelectionView, error) {
	agents, err := s.service.ResolveAgents(ctx, reset, queries)
	if err != nil {
		return SelectionView{}, err
	}

	current, err := s.Get(ctx, reset)
	if err != nil {
		return SelectionView{}, err
	}

	next := domain.NewAgentSelection(current.Agents...).With(agents...)
	return s.save(ctx, reset, next)
}

func (s *SelectionService) Remove(ctx context.Context, reset domain.ResetID, symbols []string) (SelectionView, error) {
	current, err := s.Get(ctx, reset)
	if err != nil {
		return SelectionView{}, err
	}

	drop := make([]domain.AgentSymbol, 0, len(symbols))
	for _, symbol := range symbols {
		drop = append(drop, domain.NormalizeAgentSymbol(symbol))
	}

	next := domain.NewAgentSelection(current.Agents...).Without(drop...)
	return s.save(ctx, reset, next)
}

func (s *SelectionService) Clear(ctx context.Context, reset domain.ResetID) error {
	if err := s.repo.Delete(ctx, reset); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}

	return nil
}

func (s *SelectionService) save(ctx context.Context, reset domain.ResetID, selection domain.AgentSelection) (SelectionView, error) {
	if err := s.repo.Save(ctx, reset, selection); err != nil {
		return SelectionView{}, fmt.Errorf("save selection: %w", err)
	}

	return toSelectionView(reset, selection, true), nil
}

func toSelectionView(reset domain.ResetID, selection domain.AgentSelection, saved bool) SelectionView {
	return SelectionView{
		Reset:  reset,
		Agents: selection.Symbols(),
		Saved:  saved,
	}
}
