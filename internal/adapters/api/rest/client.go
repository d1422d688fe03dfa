package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/bnema/spacetraders-stats-cli/internal/ports"
	"github.com/bnema/spacetraders-stats-cli/internal/version"
)

const maxResponseBytes = 16 << 20

var errNotFound = errors.New("not found")

type Config struct {
	BaseURL   string
	CacheTTL  time.Duration
	CacheSize int
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
	logger     *slog.Logger
}

var _ ports.StatsAPI = (*Client)(nil)

func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("stats api base url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse stats api base url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cache, err := newResponseCache(cfg.CacheSize, cfg.CacheTTL, time.Now)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      cache,
		logger:     logger,
	}, nil
}

func (c *Client) ListResets(ctx context.Context) ([]domain.Reset, error) {
	var payload []resetPayload
	if err := c.getJSON(ctx, "/resets", nil, &payload); err != nil {
		return nil, fmt.Errorf("list resets: %w", err)
	}

	resets := make([]domain.Reset, 0, len(payload))
	for _, item := range payload {
		if strings.TrimSpace(item.Reset) == "" {
			continue
		}
		resets = append(resets, item.toDomain())
	}

	return resets, nil
}

func (c *Client) GetLeaderboard(ctx context.Context, reset domain.ResetID) ([]domain.LeaderboardEntry, error) {
	var payload []leaderboardEntryPayload
	if err := c.getJSON(ctx, "/leaderboard/"+url.PathEscape(string(reset)), nil, &payload); err != nil {
		return nil, resetError("get leaderboard", reset, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(payload))
	for _, item := range payload {
		entries = append(entries, item.toDomain(reset))
	}

	return entries, nil
}

func (c *Client) GetJumpGateAssignments(ctx context.Context, reset domain.ResetID) ([]domain.JumpGateAssignment, error) {
	var payload []jumpGateAssignmentPayload
	if err := c.getJSON(ctx, "/reset/"+url.PathEscape(string(reset))+"/jump-gate/assignment", nil, &payload); err != nil {
		return nil, resetError("get jump gate assignments", reset, err)
	}

	assignments := make([]domain.JumpGateAssignment, 0, len(payload))
	for _, item := range payload {
		assignments = append(assignments, item.toDomain())
	}

	return assignments, nil
}

func (c *Client) GetConstructionProgress(ctx context.Context, reset domain.ResetID) ([]domain.ConstructionProgressEntry, error) {
	var payload []constructionProgressPayload
	if err := c.getJSON(ctx, "/reset/"+url.PathEscape(string(reset))+"/jump-gate/construction-progress", nil, &payload); err != nil {
		return nil, resetError("get construction progress", reset, err)
	}

	entries := make([]domain.ConstructionProgressEntry, 0, len(payload))
	for _, item := range payload {
		entry := item.toDomain()
		if !entry.WellFormed() {
			c.logger.Debug("malformed construction progress entry",
				slog.String("reset", string(reset)),
				slog.String("gate", string(entry.JumpGateWaypointSymbol)),
				slog.String("material", string(entry.TradeSymbol)),
				slog.Int64("fulfilled", entry.Fulfilled),
				slog.Int64("required", entry.Required),
			)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (c *Client) GetHistory(ctx context.Context, reset domain.ResetID, agents []domain.AgentSymbol) ([]domain.AgentHistory, error) {
	if len(agents) == 0 {
		return []domain.AgentHistory{}, nil
	}

	symbols := make([]string, 0, len(agents))
	for _, agent := range agents {
		symbols = append(symbols, string(agent))
	}
	query := url.Values{"agent_symbols": {strings.Join(symbols, ",")}}

	var payload []agentHistoryPayload
	if err := c.getJSON(ctx, "/history/"+url.PathEscape(string(reset)), query, &payload); err != nil {
		return nil, resetError("get history", reset, err)
	}

	histories := make([]domain.AgentHistory, 0, len(payload))
	for _, item := range payload {
		histories = append(histories, item.toDomain())
	}

	return histories, nil
}

func (c *Client) GetAllTimeRanks(ctx context.Context) ([]domain.RankedEntry, error) {
	var payload []rankedEntryPayload
	if err := c.getJSON(ctx, "/all-time/ranks", nil, &payload); err != nil {
		return nil, fmt.Errorf("get all-time ranks: %w", err)
	}

	rows := make([]domain.RankedEntry, 0, len(payload))
	for _, item := range payload {
		rows = append(rows, item.toDomain())
	}

	return rows, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	if body, ok := c.cache.get(endpoint); ok {
		c.logger.Debug("stats api request",
			slog.String("method", http.MethodGet),
			slog.String("path", path),
			slog.Bool("cached", true),
		)
		return decodeBody(body, out)
	}

	body, err := c.fetch(ctx, path, endpoint)
	if err != nil {
		return err
	}

	if err := decodeBody(body, out); err != nil {
		return err
	}
	c.cache.put(endpoint, body)

	return nil
}

func (c *Client) fetch(ctx context.Context, path, endpoint string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "sts/"+version.Version)

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	c.logger.Debug("stats api request",
		slog.String("method", http.MethodGet),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("cached", false),
	)

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: status %d", errNotFound, response.StatusCode)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func decodeBody(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

func resetError(action string, reset domain.ResetID, err error) error {
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%s for reset %s: %w", action, reset, domain.ErrResetNotFound)
	}

	return fmt.Errorf("%s for reset %s: %w", action, reset, err)
}
