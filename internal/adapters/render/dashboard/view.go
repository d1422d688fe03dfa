package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func (r *Renderer) resetsView(resets []application.ResetView, s styles) string {
	lines := []string{
		s.title.Render("Resets"),
		s.header.Render(fmt.Sprintf("resets: %d", len(resets))),
	}

	if len(resets) == 0 {
		lines = append(lines, s.empty.Render("No resets recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(resets))
	for _, reset := range resets {
		status := ""
		if reset.IsOngoing {
			status = s.ongoing.Render("ongoing")
		}
		duration := time.Duration(reset.DurationMs) * time.Millisecond
		rows = append(rows, []string{
			string(reset.Reset),
			formatTimestamp(reset.StartedAt),
			formatTimestamp(reset.LastSeenAt),
			FormatDuration(&duration),
			status,
		})
	}

	lines = append(lines, s.section.Render(renderTable(s, []column{
		{title: "reset"},
		{title: "started"},
		{title: "last seen"},
		{title: "duration", right: true},
		{title: ""},
	}, rows)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) leaderboardView(view application.LeaderboardView, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Leaderboard %s", view.Reset)),
		s.header.Render(fmt.Sprintf("agents: %d, by %s", view.TotalAgents, strings.ToLower(view.Field.Label()))),
	}

	if len(view.Rows) == 0 {
		lines = append(lines, s.empty.Render("No agents on the leaderboard."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	var largest int64
	for _, row := range view.Rows {
		largest = max(largest, row.Value)
	}

	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		agent := lipgloss.NewStyle().Bold(true)
		if row.Color != "" {
			agent = agent.Foreground(lipgloss.Color(string(row.Color)))
		}
		rows = append(rows, []string{
			strconv.Itoa(row.Rank),
			agent.Render(string(row.AgentSymbol)),
			r.numbers.Int(row.Value),
			renderValueBar(row.Value, largest, leaderboardBarWidth, string(row.Color)),
		})
	}

	lines = append(lines, s.section.Render(renderTable(s, []column{
		{title: "#", right: true},
		{title: "agent"},
		{title: strings.ToLower(view.Field.Label()), right: true},
		{title: ""},
	}, rows)))

	if view.TotalAgents > len(view.Rows) {
		lines = append(lines, s.empty.Render(fmt.Sprintf("%d more agents not shown", view.TotalAgents-len(view.Rows))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) jumpGateView(view application.JumpGateView, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Jump gates %s", view.Reset)),
		s.detail.Render(fmt.Sprintf("agents tracked: %s", r.numbers.Int(int64(view.NumTrackedAgents)))),
		s.detail.Render(fmt.Sprintf("gates tracked: %s", r.numbers.Int(int64(view.NumTrackedGates)))),
		s.detail.Render(fmt.Sprintf("gates started: %s", r.numbers.Int(int64(view.NumGatesStarted)))),
		s.detail.Render(fmt.Sprintf("gates completed: %s", r.numbers.Int(int64(view.NumGatesCompleted)))),
	}

	if len(view.Gates) == 0 {
		lines = append(lines, s.empty.Render("No jump gates tracked."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, gate := range view.Gates {
		lines = append(lines, s.section.Render(r.gateBlock(gate, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) gateBlock(gate application.GateRow, s styles) string {
	status := s.empty.Render("not started")
	switch {
	case gate.IsComplete:
		status = s.complete.Render("complete")
	case gate.Progress > 0:
		status = s.ongoing.Render("in progress")
	}

	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.agent.Render(string(gate.JumpGateWaypointSymbol)),
			" ",
			renderProgressBar(gate.Progress, gateBarWidth, s),
			" ",
			s.detail.Render(r.numbers.Percent(gate.Progress)),
			" ",
			status,
		),
	}

	if len(gate.AgentsInSystem) > 0 {
		agents := make([]string, 0, len(gate.AgentsInSystem))
		for _, agent := range gate.AgentsInSystem {
			agents = append(agents, string(agent))
		}
		parts = append(parts, s.header.Render("agents: "+strings.Join(agents, ", ")))
	}

	for _, material := range gate.Materials {
		parts = append(parts, s.detail.Render(fmt.Sprintf(
			"  %s %s / %s",
			material.TradeSymbol,
			r.numbers.Int(material.Fulfilled),
			r.numbers.Int(material.Required),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) materialsView(view application.MaterialsView, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Materials %s", view.Reset)),
		s.header.Render(fmt.Sprintf("materials: %d", len(view.Materials))),
	}

	if len(view.Materials) == 0 {
		lines = append(lines, s.empty.Render("No material deliveries recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(view.Materials))
	for _, material := range view.Materials {
		rows = append(rows, []string{
			string(material.TradeSymbol),
			r.numbers.Int(int64(material.NumStartedDeliveries)),
			r.numbers.Int(int64(material.NumCompletedDeliveries)),
			FormatMillis(material.FastestFirstDeliveryMs),
			FormatMillis(material.FastestLastDeliveryMs),
			FormatMillis(material.FastestConstructionMs),
		})
	}

	lines = append(lines, s.section.Render(renderTable(s, []column{
		{title: "material"},
		{title: "started", right: true},
		{title: "completed", right: true},
		{title: "first delivery", right: true},
		{title: "last delivery", right: true},
		{title: "construction", right: true},
	}, rows)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) dashboardView(view application.DashboardView, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.leaderboardView(view.Leaderboard, s),
		s.section.Render(r.jumpGateView(view.JumpGates, s)),
		s.section.Render(r.materialsView(view.Materials, s)),
	)
}

func (r *Renderer) historyView(view application.HistoryView, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("History %s", view.Reset)),
		s.header.Render(fmt.Sprintf("agents: %d", len(view.Agents))),
	}

	if len(view.Agents) == 0 {
		lines = append(lines, s.empty.Render("No history for the selected agents."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(view.Agents))
	for _, agent := range view.Agents {
		name := lipgloss.NewStyle().Bold(true)
		if agent.Color != "" {
			name = name.Foreground(lipgloss.Color(string(agent.Color)))
		}
		rows = append(rows, []string{
			name.Render(string(agent.AgentSymbol)),
			r.numbers.Int(agent.LatestCredits),
			r.numbers.Int(agent.PeakCredits),
			r.numbers.Int(agent.LatestShips),
			r.numbers.Int(int64(agent.DataPoints)),
			formatTimestamp(agent.LatestAt),
		})
	}

	lines = append(lines, s.section.Render(renderTable(s, []column{
		{title: "agent"},
		{title: "credits", right: true},
		{title: "peak", right: true},
		{title: "ships", right: true},
		{title: "points", right: true},
		{title: "last update"},
	}, rows)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) ranksView(view application.RanksView, s styles) string {
	lines := []string{
		s.title.Render("All-time ranks"),
		s.header.Render(fmt.Sprintf("max rank: %s, resets: %s", view.MaxRank, view.ResetWindow)),
	}

	if len(view.Rows) == 0 {
		lines = append(lines, s.empty.Render("No ranked agents match the filter."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{
			string(row.Reset),
			strconv.Itoa(row.Rank),
			string(row.AgentSymbol),
			r.numbers.Int(row.Credits),
		})
	}

	lines = append(lines, s.section.Render(renderTable(s, []column{
		{title: "reset"},
		{title: "rank", right: true},
		{title: "agent"},
		{title: "credits", right: true},
	}, rows)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) selectionView(view application.SelectionView, s styles) string {
	source := "saved"
	if !view.Saved {
		source = fmt.Sprintf("default top %d", application.DefaultSelectionSize)
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Selected agents %s", view.Reset)),
		s.header.Render(fmt.Sprintf("agents: %d (%s)", len(view.Agents), source)),
	}

	if len(view.Agents) == 0 {
		lines = append(lines, s.empty.Render("No agents selected."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, agent := range view.Agents {
		lines = append(lines, s.agent.Render(string(agent)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}

	return value.UTC().Format(timestampLayout)
}
