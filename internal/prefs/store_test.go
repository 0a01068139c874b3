package prefs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-analyzer/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yml")
	store := NewFileStore(path, discardLogger())

	_, ok := store.Get(KeyTheme)
	assert.False(t, ok, "missing file reads as absent")

	store.Set(KeyTheme, "dark")
	store.Set(KeyLanguage, "en")

	v, ok := store.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	reopened := NewFileStore(path, discardLogger())
	v, ok = reopened.Get(KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "en", v)
}

func TestFileStore_CorruptFileReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o600))

	store := NewFileStore(path, discardLogger())
	_, ok := store.Get(KeyTheme)
	assert.False(t, ok)

	store.Set(KeyTheme, "dark")
	v, ok := store.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

// brokenPath returns a path whose parent is a regular file, so every read
// and write on it fails.
func brokenPath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	return filepath.Join(blocker, "preferences.yml")
}

func TestFileStore_FailingStorage(t *testing.T) {
	store := NewFileStore(brokenPath(t), discardLogger())

	assert.NotPanics(t, func() {
		store.Set(KeyTheme, "dark")
		store.Set(KeyLanguage, "en")
	})
	_, ok := store.Get(KeyTheme)
	assert.False(t, ok)
}

func TestManager_Defaults(t *testing.T) {
	m := NewManager(NewMemoryStore())
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: core.LanguageID}, m.Current())
}

func TestManager_InvalidStoredValuesUseDefaults(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyTheme, "sepia")
	store.Set(KeyLanguage, "fr")

	m := NewManager(store)
	assert.Equal(t, ThemeLight, m.Current().Theme)
	assert.Equal(t, core.LanguageID, m.Current().Language)
}

func TestManager_TogglesWriteThrough(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	assert.Equal(t, ThemeDark, m.ToggleTheme())
	assert.Equal(t, core.LanguageEN, m.ToggleLanguage())

	v, _ := store.Get(KeyTheme)
	assert.Equal(t, "dark", v)
	v, _ = store.Get(KeyLanguage)
	assert.Equal(t, "en", v)

	reloaded := NewManager(store)
	assert.Equal(t, Preferences{Theme: ThemeDark, Language: core.LanguageEN}, reloaded.Current())

	assert.Equal(t, ThemeLight, m.ToggleTheme())
}

func TestManager_SurvivesStorageFailure(t *testing.T) {
	m := NewManager(NewFileStore(brokenPath(t), discardLogger()))
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: core.LanguageID}, m.Current())

	assert.NotPanics(t, func() {
		assert.Equal(t, ThemeDark, m.ToggleTheme())
		assert.Equal(t, core.LanguageEN, m.ToggleLanguage())
	})
	assert.Equal(t, Preferences{Theme: ThemeDark, Language: core.LanguageEN}, m.Current())
}
