package domain

import "strings"

// AgentSelection is an ordered set of agents. Every method returns a new
// selection and leaves the receiver untouched.
type AgentSelection struct {
	symbols []AgentSymbol
}

func NewAgentSelection(symbols ...AgentSymbol) AgentSelection {
	return AgentSelection{}.With(symbols...)
}

func (s AgentSelection) With(symbols ...AgentSymbol) AgentSelection {
	next := append([]AgentSymbol(nil), s.symbols...)
	for _, symbol := range symbols {
		normalized := NormalizeAgentSymbol(string(symbol))
		if normalized == "" || containsAgent(next, normalized) {
			continue
		}
		next = append(next, normalized)
	}

	return AgentSelection{symbols: next}
}

func (s AgentSelection) Without(symbols ...AgentSymbol) AgentSelection {
	drop := make(map[AgentSymbol]struct{}, len(symbols))
	for _, symbol := range symbols {
		drop[NormalizeAgentSymbol(string(symbol))] = struct{}{}
	}

	next := make([]AgentSymbol, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		if _, ok := drop[symbol]; ok {
			continue
		}
		next = append(next, symbol)
	}

	return AgentSelection{symbols: next}
}

func (s AgentSelection) Contains(symbol AgentSymbol) bool {
	return containsAgent(s.symbols, NormalizeAgentSymbol(string(symbol)))
}

func (s AgentSelection) Symbols() []AgentSymbol {
	return append([]AgentSymbol(nil), s.symbols...)
}

func (s AgentSelection) Len() int {
	return len(s.symbols)
}

// DefaultSelection picks the top n agents by credits.
func DefaultSelection(entries []LeaderboardEntry, n int) AgentSelection {
	sorted := SortAndColor(entries, LeaderboardFieldCredits.Value, nil)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	symbols := make([]AgentSymbol, 0, len(sorted))
	for _, colored := range sorted {
		symbols = append(symbols, colored.Entry.AgentSymbol)
	}

	return NewAgentSelection(symbols...)
}

func NormalizeAgentSymbol(raw string) AgentSymbol {
	return AgentSymbol(strings.ToUpper(strings.TrimSpace(raw)))
}

func containsAgent(symbols []AgentSymbol, symbol AgentSymbol) bool {
	for _, existing := range symbols {
		if existing == symbol {
			return true
		}
	}
	return false
}
