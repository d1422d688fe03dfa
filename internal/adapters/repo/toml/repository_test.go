package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(SelectionsPathKey, path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "selections.toml"))

	march := domain.NewAgentSelection("ALPHA", "BETA")
	february := domain.NewAgentSelection("GAMMA")

	require.NoError(t, repo.Save(context.Background(), "2024-03-10", march))
	require.NoError(t, repo.Save(context.Background(), "2024-02-18", february))

	got, err := repo.Get(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, march.Symbols(), got.Symbols())

	got, err = repo.Get(context.Background(), "2024-02-18")
	require.NoError(t, err)
	assert.Equal(t, february.Symbols(), got.Symbols())
}

func TestRepositorySaveReplacesExistingReset(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "selections.toml"))

	require.NoError(t, repo.Save(context.Background(), "2024-03-10", domain.NewAgentSelection("ALPHA")))
	require.NoError(t, repo.Save(context.Background(), "2024-03-10", domain.NewAgentSelection("BETA", "GAMMA")))

	got, err := repo.Get(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.AgentSymbol{"BETA", "GAMMA"}, got.Symbols())
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "selections.toml"))

	require.NoError(t, repo.Save(context.Background(), "2024-03-10", domain.NewAgentSelection("ALPHA")))
	require.NoError(t, repo.Save(context.Background(), "2024-02-18", domain.NewAgentSelection("BETA")))
	require.NoError(t, repo.Delete(context.Background(), "2024-03-10"))

	_, err := repo.Get(context.Background(), "2024-03-10")
	require.ErrorIs(t, err, domain.ErrSelectionNotFound)

	kept, err := repo.Get(context.Background(), "2024-02-18")
	require.NoError(t, err)
	assert.Equal(t, []domain.AgentSymbol{"BETA"}, kept.Symbols())

	require.NoError(t, repo.Delete(context.Background(), "1999-01-01"))
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), "2024-03-10", domain.NewAgentSelection("ALPHA")))

	selectionsPath := filepath.Join(homeDir, ".sts", "selections.toml")
	info, err := os.Stat(selectionsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "selections.toml"))

	_, err := repo.Get(context.Background(), "2024-03-10")
	require.ErrorIs(t, err, domain.ErrSelectionNotFound)
	require.NoError(t, repo.Delete(context.Background(), "2024-03-10"))
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	selectionsPath := filepath.Join(t.TempDir(), "selections.toml")
	require.NoError(t, os.WriteFile(selectionsPath, []byte("selections = ["), 0o600))

	repo := newTestRepository(t, selectionsPath)

	_, err := repo.Get(context.Background(), "2024-03-10")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode selections file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "selections.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, "2024-03-10", domain.NewAgentSelection("ALPHA"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllResets(t *testing.T) {
	t.Parallel()

	selectionsPath := filepath.Join(t.TempDir(), "selections.toml")
	repoA := newTestRepository(t, selectionsPath)
	repoB := newTestRepository(t, selectionsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			reset := domain.ResetID(prefix + strconv.Itoa(i))
			errCh <- repo.Save(context.Background(), reset, domain.NewAgentSelection("AGENT"))
		}
	}

	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	for i := 0; i < perRepoWrites; i++ {
		for _, prefix := range []string{"a-", "b-"} {
			_, err := repoA.Get(context.Background(), domain.ResetID(prefix+strconv.Itoa(i)))
			require.NoError(t, err)
		}
	}
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	selectionsPath := filepath.Join(t.TempDir(), "selections.toml")
	repo := newTestRepository(t, selectionsPath)

	require.NoError(t, repo.Save(context.Background(), "2024-03-10", domain.NewAgentSelection("ALPHA")))

	data, err := os.ReadFile(selectionsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "2024-03-10")
}

func TestRepositoryNormalizesAgentsOnLoad(t *testing.T) {
	t.Parallel()

	selectionsPath := filepath.Join(t.TempDir(), "selections.toml")
	require.NoError(t, os.WriteFile(selectionsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[selections]]",
		"reset = \"2024-03-10\"",
		"agents = [\"alpha\", \"ALPHA\", \" beta \"]",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, selectionsPath)

	got, err := repo.Get(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.AgentSymbol{"ALPHA", "BETA"}, got.Symbols())
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	selectionsPath := filepath.Join(t.TempDir(), "selections.toml")
	require.NoError(t, os.WriteFile(selectionsPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"selections = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, selectionsPath)

	_, err := repo.Get(context.Background(), "2024-03-10")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported selections schema version")
}
