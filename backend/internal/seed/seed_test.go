package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"synonym-search/backend/internal/synonym"
	apperrors "synonym-search/backend/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_YAML(t *testing.T) {
	f, err := Parse("mem.yaml", []byte(`
groups:
  - word: happy
    synonyms: [joyful, glad]
  - word: sad
    synonyms:
      - blue
`))
	require.NoError(t, err)
	require.Len(t, f.Groups, 2)
	assert.Equal(t, Group{Word: "happy", Synonyms: []string{"joyful", "glad"}}, f.Groups[0])
	assert.Equal(t, "mem.yaml", f.Path)
}

func TestParse_JSON(t *testing.T) {
	f, err := Parse("mem.json", []byte(`{"groups":[{"word":"big","synonyms":["large","huge"]}]}`))
	require.NoError(t, err)
	require.Len(t, f.Groups, 1)
	assert.Equal(t, []string{"large", "huge"}, f.Groups[0].Synonyms)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("groups: [word: {"))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeSeed))
}

func TestLoad_LinksAllFiles(t *testing.T) {
	a := writeFile(t, "a.yaml", "groups:\n  - word: happy\n    synonyms: [joyful]\n")
	b := writeFile(t, "b.json", `{"groups":[{"word":"joyful","synonyms":["elated"]}]}`)

	store := synonym.NewStore(synonym.WithLogger(zap.NewNop()))
	n, err := Load(context.Background(), store, []string{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	g, err := store.ResolveTransitive("happy")
	require.NoError(t, err)
	assert.Equal(t, []string{"elated", "joyful"}, g.Synonyms())
}

func TestLoad_NoPaths(t *testing.T) {
	store := synonym.NewStore(synonym.WithLogger(zap.NewNop()))
	n, err := Load(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoad_MissingFile(t *testing.T) {
	store := synonym.NewStore(synonym.WithLogger(zap.NewNop()))
	_, err := Load(context.Background(), store, []string{filepath.Join(t.TempDir(), "missing.yaml")})

	var seedErr *apperrors.ErrSeedLoadFailed
	require.ErrorAs(t, err, &seedErr)
	assert.Equal(t, -1, seedErr.Index)
}

func TestApply_ReportsRejectedGroup(t *testing.T) {
	store := synonym.NewStore(synonym.WithLogger(zap.NewNop()))
	files := []*File{{
		Path: "mem.yaml",
		Groups: []Group{
			{Word: "happy", Synonyms: []string{"glad"}},
			{Word: "sad", Synonyms: []string{"SAD"}},
			{Word: "big", Synonyms: []string{"large"}},
		},
	}}

	n, err := Apply(store, files)
	assert.Equal(t, 1, n)

	var seedErr *apperrors.ErrSeedLoadFailed
	require.ErrorAs(t, err, &seedErr)
	assert.Equal(t, 1, seedErr.Index)
	assert.True(t, errors.Is(err, apperrors.ErrSelfReference))
	assert.Equal(t, synonym.Stats{Words: 2, Relations: 1}, store.Stats())
}

func TestLoadFiles_CancelledContext(t *testing.T) {
	a := writeFile(t, "a.yaml", "groups: []\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFiles(ctx, []string{a})
	assert.True(t, errors.Is(err, context.Canceled))
}
