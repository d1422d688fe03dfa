package dashboard

import (
	"github.com/bnema/spacetraders-stats-cli/internal/application"
)

const (
	leaderboardBarWidth = 30
	gateBarWidth        = 24
	timestampLayout     = "2006-01-02 15:04"
)

// Renderer turns application views into terminal text. Each method runs a
// one-shot bubbletea program and returns its final frame.
type Renderer struct {
	numbers NumberFormatter
}

func NewRenderer(numbers NumberFormatter) *Renderer {
	return &Renderer{numbers: numbers}
}

func (r *Renderer) Resets(resets []application.ResetView) (string, error) {
	return run(func(s styles) string { return r.resetsView(resets, s) })
}

func (r *Renderer) Leaderboard(view application.LeaderboardView) (string, error) {
	return run(func(s styles) string { return r.leaderboardView(view, s) })
}

func (r *Renderer) JumpGates(view application.JumpGateView) (string, error) {
	return run(func(s styles) string { return r.jumpGateView(view, s) })
}

func (r *Renderer) Materials(view application.MaterialsView) (string, error) {
	return run(func(s styles) string { return r.materialsView(view, s) })
}

func (r *Renderer) Dashboard(view application.DashboardView) (string, error) {
	return run(func(s styles) string { return r.dashboardView(view, s) })
}

func (r *Renderer) History(view application.HistoryView) (string, error) {
	return run(func(s styles) string { return r.historyView(view, s) })
}

func (r *Renderer) Ranks(view application.RanksView) (string, error) {
	return run(func(s styles) string { return r.ranksView(view, s) })
}

func (r *Renderer) Selection(view application.SelectionView) (string, error) {
	return run(func(s styles) string { return r.selectionView(view, s) })
}
