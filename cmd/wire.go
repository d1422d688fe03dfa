package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/spacetraders-stats-cli/internal/adapters/api/rest"
	"github.com/bnema/spacetraders-stats-cli/internal/adapters/http/server"
	"github.com/bnema/spacetraders-stats-cli/internal/adapters/render/dashboard"
	tomlrepo "github.com/bnema/spacetraders-stats-cli/internal/adapters/repo/toml"
	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/bnema/spacetraders-stats-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configDir  = ".sts"
	configName = "config"
	configType = "toml"
	envPrefix  = "STS"

	apiBaseURLKey    = "api.base_url"
	apiTimeoutKey    = "api.timeout"
	apiCacheTTLKey   = "api.cache_ttl"
	apiCacheSizeKey  = "api.cache_size"
	displayLocaleKey = "display.locale"
	logLevelKey      = "log.level"
	serveListenKey   = "serve.listen"

	defaultAPIBaseURL = "http://127.0.0.1:8000"
	defaultLogLevel   = "warn"
)

type app struct {
	service    *application.Service
	selections *application.SelectionService
	renderer   *dashboard.Renderer
	server     *server.Server
	listenAddr string
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.GetString(logLevelKey), os.Stderr)
	if err != nil {
		return nil, err
	}

	client, err := rest.NewClient(rest.Config{
		BaseURL:   cfg.GetString(apiBaseURLKey),
		CacheTTL:  cfg.GetDuration(apiCacheTTLKey),
		CacheSize: cfg.GetInt(apiCacheSizeKey),
	}, &http.Client{Timeout: cfg.GetDuration(apiTimeoutKey)}, logger)
	if err != nil {
		return nil, fmt.Errorf("wire stats api client: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire selection repository: %w", err)
	}

	numbers, err := dashboard.NewNumberFormatter(cfg.GetString(displayLocaleKey))
	if err != nil {
		return nil, fmt.Errorf("wire number formatter: %w", err)
	}

	service := application.NewService(client, ports.SystemClock{}, domain.DefaultPalette)
	selections := application.NewSelectionService(repo, service)

	return &app{
		service:    service,
		selections: selections,
		renderer:   dashboard.NewRenderer(numbers),
		server:     server.New(service, selections, logger),
		listenAddr: cfg.GetString(serveListenKey),
	}, nil
}

// loadConfig reads ~/.sts/config.toml when present. STS_* environment
// variables override file values, e.g. STS_API_BASE_URL for api.base_url.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)
	cfg.SetDefault(apiTimeoutKey, 15*time.Second)
	cfg.SetDefault(apiCacheTTLKey, time.Minute)
	cfg.SetDefault(apiCacheSizeKey, 128)
	cfg.SetDefault(displayLocaleKey, dashboard.DefaultLocale)
	cfg.SetDefault(logLevelKey, defaultLogLevel)
	cfg.SetDefault(serveListenKey, server.DefaultListenAddr)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func newLogger(level string, output io.Writer) (*slog.Logger, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: parsed})), nil
}
