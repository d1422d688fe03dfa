package domain

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

type agentSource []AgentSymbol

func (s agentSource) String(i int) string {
	return string(s[i])
}

func (s agentSource) Len() int {
	return len(s)
}

// MatchAgent resolves a possibly partial agent symbol against candidates.
// An exact case-insensitive match wins over the best fuzzy match.
func MatchAgent(candidates []AgentSymbol, query string) (AgentSymbol, error) {
	normalized := NormalizeAgentSymbol(query)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty query", ErrAgentNotFound)
	}

	for _, candidate := range candidates {
		if strings.EqualFold(string(candidate), string(normalized)) {
			return candidate, nil
		}
	}

	matches := fuzzy.FindFrom(string(normalized), agentSource(upperAll(candidates)))
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrAgentNotFound, query)
	}

	return candidates[matches[0].Index], nil
}

func MatchAgents(candidates []AgentSymbol, queries []string) ([]AgentSymbol, error) {
	matched := make([]AgentSymbol, 0, len(queries))
	for _, query := range queries {
		symbol, err := MatchAgent(candidates, query)
		if err != nil {
			return nil, err
		}
		matched = append(matched, symbol)
	}

	return matched, nil
}

func upperAll(symbols []AgentSymbol) []AgentSymbol {
	upper := make([]AgentSymbol, 0, len(symbols))
	for _, symbol := range symbols {
		upper = append(upper, AgentSymbol(strings.ToUpper(string(symbol))))
	}
	return upper
}
