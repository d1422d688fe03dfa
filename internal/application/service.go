package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/bnema/spacetraders-stats-cli/internal/ports"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	api     ports.StatsAPI
	clock   ports.Clock
	palette []domain.Color
}

func NewService(api ports.StatsAPI, clock ports.Clock, palette []domain.Color) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if len(palette) == 0 {
		palette = domain.DefaultPalette
	}

	return &Service{
		api:     api,
		clock:   clock,
		palette: palette,
	}
}

func (s *Service) ListResets(ctx context.Context) ([]ResetView, error) {
	resets, err := s.api.ListResets(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ResetView, 0, len(resets))
	for _, reset := range domain.SortResetsDesc(resets) {
		views = append(views, s.toResetView(reset))
	}

	return views, nil
}

// ResolveReset returns the newest reset when raw is empty.
func (s *Service) ResolveReset(ctx context.Context, raw string) (domain.Reset, error) {
	resets, err := s.api.ListResets(ctx)
	if err != nil {
		return domain.Reset{}, err
	}

	id := strings.TrimSpace(raw)
	if id == "" {
		return domain.LatestReset(resets)
	}

	reset, err := domain.FindReset(resets, domain.ResetID(id))
	if err != nil {
		return domain.Reset{}, fmt.Errorf("reset %s: %w", id, err)
	}

	return reset, nil
}

func (s *Service) Leaderboard(ctx context.Context, reset domain.ResetID, field domain.LeaderboardField) (LeaderboardView, error) {
	entries, err := s.api.GetLeaderboard(ctx, reset)
	if err != nil {
		return LeaderboardView{}, err
	}

	return s.toLeaderboardView(reset, field, entries), nil
}

func (s *Service) Materials(ctx context.Context, reset domain.ResetID) (MaterialsView, error) {
	entries, err := s.api.GetConstructionProgress(ctx, reset)
	if err != nil {
		return MaterialsView{}, err
	}

	return toMaterialsView(reset, entries), nil
}

func (s *Service) JumpGates(ctx context.Context, reset domain.ResetID) (JumpGateView, error) {
	var (
		assignments []domain.JumpGateAssignment
		progress    []domain.ConstructionProgressEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = s.api.GetJumpGateAssignments(gctx, reset)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.api.GetConstructionProgress(gctx, reset)
		return err
	})
	if err := g.Wait(); err != nil {
		return JumpGateView{}, err
	}

	return toJumpGateView(reset, progress, assignments), nil
}

// Dashboard fetches everything shown for one reset concurrently. The first
// failing request cancels the others.
func (s *Service) Dashboard(ctx context.Context, reset domain.ResetID, field domain.LeaderboardField) (DashboardView, error) {
	var (
		leaderboard []domain.LeaderboardEntry
		assignments []domain.JumpGateAssignment
		progress    []domain.ConstructionProgressEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaderboard, err = s.api.GetLeaderboard(gctx, reset)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.api.GetJumpGateAssignments(gctx, reset)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.api.GetConstructionProgress(gctx, reset)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}

	return DashboardView{
		Reset:       reset,
		Leaderboard: s.toLeaderboardView(reset, field, leaderboard),
		JumpGates:   toJumpGateView(reset, progress, assignments),
		Materials:   toMaterialsView(reset, progress),
	}, nil
}

func (s *Service) History(ctx context.Context, reset domain.ResetID, agents []domain.AgentSymbol) (HistoryView, error) {
	histories, err := s.api.GetHistory(ctx, reset, agents)
	if err != nil {
		return HistoryView{}, err
	}

	colored := domain.SortAndColor(histories, domain.AgentHistory.LatestCredits, s.palette)
	rows := make([]HistoryRow, 0, len(colored))
	for _, item := range colored {
		latest, _ := item.Entry.Latest()
		rows = append(rows, HistoryRow{
			AgentSymbol:   item.Entry.AgentSymbol,
			Color:         item.Color,
			DataPoints:    len(item.Entry.Points),
			LatestAt:      latest.At,
			LatestCredits: latest.Credits,
			LatestShips:   latest.ShipCount,
			PeakCredits:   item.Entry.PeakCredits(),
		})
	}

	return HistoryView{Reset: reset, Agents: rows}, nil
}

// ResolveAgents maps partial agent symbols to agents on the reset's leaderboard.
func (s *Service) ResolveAgents(ctx context.Context, reset domain.ResetID, queries []string) ([]domain.AgentSymbol, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	candidates, err := s.agentCandidates(ctx, reset)
	if err != nil {
		return nil, err
	}

	agents, err := domain.MatchAgents(candidates, queries)
	if err != nil {
		return nil, fmt.Errorf("resolve agents for reset %s: %w", reset, err)
	}

	return domain.NewAgentSelection(agents...).Symbols(), nil
}

func (s *Service) Ranks(ctx context.Context, filter domain.HistoryFilter) (RanksView, error) {
	rows, err := s.api.GetAllTimeRanks(ctx)
	if err != nil {
		return RanksView{}, err
	}

	filtered := filter.Apply(rows)
	view := RanksView{
		MaxRank:     filter.MaxRank.String(),
		ResetWindow: filter.ResetWindow.String(),
		Rows:        make([]RankRow, 0, len(filtered)),
	}
	for _, row := range filtered {
		view.Rows = append(view.Rows, RankRow{
			Reset:       row.Reset,
			AgentSymbol: row.AgentSymbol,
			Credits:     row.Credits,
			Rank:        row.Rank,
		})
	}

	return view, nil
}

func (s *Service) agentCandidates(ctx context.Context, reset domain.ResetID) ([]domain.AgentSymbol, error) {
	entries, err := s.api.GetLeaderboard(ctx, reset)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.AgentSymbol, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, entry.AgentSymbol)
	}

	return candidates, nil
}

func (s *Service) toResetView(reset domain.Reset) ResetView {
	duration := reset.Duration()
	if reset.IsOngoing && !reset.FirstTs.IsZero() {
		if elapsed := s.clock.Now().Sub(reset.FirstTs); elapsed > duration {
			duration = elapsed
		}
	}

	return ResetView{
		Reset:      reset.ID,
		StartedAt:  reset.FirstTs,
		LastSeenAt: reset.LastTs,
		DurationMs: duration.Milliseconds(),
		IsOngoing:  reset.IsOngoing,
	}
}

func (s *Service) toLeaderboardView(reset domain.ResetID, field domain.LeaderboardField, entries []domain.LeaderboardEntry) LeaderboardView {
	colored := domain.LeaderboardFor(entries, field, s.palette)
	rows := make([]LeaderboardRow, 0, len(colored))
	for i, item := range colored {
		rows = append(rows, LeaderboardRow{
			Rank:        i + 1,
			AgentSymbol: item.Entry.AgentSymbol,
			Credits:     item.Entry.Credits,
			ShipCount:   item.Entry.ShipCount,
			Value:       field.Value(item.Entry),
			Color:       item.Color,
		})
	}

	return LeaderboardView{
		Reset:       reset,
		Field:       field,
		TotalAgents: len(entries),
		Rows:        rows,
	}
}

func toMaterialsView(reset domain.ResetID, entries []domain.ConstructionProgressEntry) MaterialsView {
	summaries := domain.AggregateMaterials(entries)
	rows := make([]MaterialRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, MaterialRow{
			TradeSymbol:            summary.TradeSymbol,
			NumStartedDeliveries:   summary.NumStartedDeliveries,
			NumCompletedDeliveries: summary.NumCompletedDeliveries,
			FastestFirstDeliveryMs: millis(summary.FastestFirstDelivery),
			FastestLastDeliveryMs:  millis(summary.FastestLastDelivery),
			FastestConstructionMs:  millis(summary.FastestConstruction),
		})
	}

	return MaterialsView{Reset: reset, Materials: rows}
}

func toJumpGateView(reset domain.ResetID, progress []domain.ConstructionProgressEntry, assignments []domain.JumpGateAssignment) JumpGateView {
	summary := domain.AggregateJumpGates(progress, assignments)
	gates := domain.GateProgressRows(progress, assignments)

	rows := make([]GateRow, 0, len(gates))
	for _, gate := range gates {
		materials := make([]GateMaterialRow, 0, len(gate.Materials))
		for _, material := range gate.Materials {
			materials = append(materials, GateMaterialRow{
				TradeSymbol: material.TradeSymbol,
				Fulfilled:   material.Fulfilled,
				Required:    material.Required,
			})
		}
		rows = append(rows, GateRow{
			JumpGateWaypointSymbol: gate.JumpGateWaypointSymbol,
			AgentsInSystem:         gate.AgentsInSystem,
			Materials:              materials,
			Progress:               gate.Fraction(),
			IsComplete:             gate.IsComplete,
		})
	}

	return JumpGateView{
		Reset:             reset,
		NumTrackedAgents:  summary.NumTrackedAgents,
		NumTrackedGates:   summary.NumTrackedGates,
		NumGatesStarted:   summary.NumGatesStarted,
		NumGatesCompleted: summary.NumGatesCompleted,
		Gates:             rows,
	}
}

func millis(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}

	ms := d.Milliseconds()
	return &ms
}
