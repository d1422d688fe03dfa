package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/bnema/spacetraders-stats-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SelectionsPathKey    = "selections.path"
	selectionsFileMode   = 0o600
	selectionsDirMode    = 0o700
	selectionsConfigDir  = ".sts"
	selectionsConfigFile = "selections.toml"
	tempFilePattern      = ".selections-*.toml.tmp"
)

// Repository stores one agent selection per reset in a single TOML file.
type Repository struct {
	selectionsPath string
	mu             *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SelectionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(SelectionsPathKey, filepath.Join(homeDir, selectionsConfigDir, selectionsConfigFile))

	selectionsPath := cfg.GetString(SelectionsPathKey)
	if selectionsPath == "" {
		return nil, errors.New("selections path is empty")
	}
	selectionsPath, err = normalizeSelectionsPath(selectionsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{selectionsPath: selectionsPath, mu: lockForPath(selectionsPath)}, nil
}

func (r *Repository) Get(ctx context.Context, reset domain.ResetID) (domain.AgentSelection, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentSelection{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.AgentSelection{}, err
	}

	for _, entry := range file.Selections {
		if entry.Reset == string(reset) {
			return fromSchema(entry), nil
		}
	}

	return domain.AgentSelection{}, domain.ErrSelectionNotFound
}

func (r *Repository) Save(ctx context.Context, reset domain.ResetID, selection domain.AgentSelection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(reset, selection)
	updated := false
	for i := range file.Selections {
		if file.Selections[i].Reset == encoded.Reset {
			file.Selections[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Selections = append(file.Selections, encoded)
	}

	sort.SliceStable(file.Selections, func(i, j int) bool {
		return file.Selections[i].Reset > file.Selections[j].Reset
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// Delete is a no-op when the reset has no saved selection.
func (r *Repository) Delete(ctx context.Context, reset domain.ResetID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Selections[:0]
	for _, entry := range file.Selections {
		if entry.Reset != string(reset) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Selections) {
		return nil
	}
	file.Selections = kept

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.selectionsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read selections file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode selections file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSelectionsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve selections path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.selectionsPath), selectionsDirMode); err != nil {
		return fmt.Errorf("create selections directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode selections file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.selectionsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp selections file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp selections file: %w", err)
	}

	if err := tempFile.Chmod(selectionsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp selections file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp selections file: %w", err)
	}

	if err := os.Rename(tempName, r.selectionsPath); err != nil {
		return fmt.Errorf("replace selections file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.selectionsPath, selectionsFileMode); err != nil {
		return fmt.Errorf("chmod selections file: %w", err)
	}

	return nil
}

func toSchema(reset domain.ResetID, selection domain.AgentSelection) selectionSchema {
	symbols := selection.Symbols()
	agents := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		agents = append(agents, string(symbol))
	}

	return selectionSchema{Reset: string(reset), Agents: agents}
}

func fromSchema(entry selectionSchema) domain.AgentSelection {
	symbols := make([]domain.AgentSymbol, 0, len(entry.Agents))
	for _, agent := range entry.Agents {
		symbols = append(symbols, domain.AgentSymbol(agent))
	}

	return domain.NewAgentSelection(symbols...)
}
