package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), nopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRead_missingFile(t *testing.T) {
	store := openStore(t)

	got := Read[testRecord](store, "speakers")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRead_corruptFile(t *testing.T) {
	store := openStore(t)
	err := os.WriteFile(filepath.Join(store.Dir(), "speakers.json"), []byte("{not json"), 0o644)
	require.NoError(t, err)

	got := Read[testRecord](store, "speakers")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWriteRead_roundtrip(t *testing.T) {
	store := openStore(t)

	want := []testRecord{{ID: "s_2", Name: "Deuxième"}, {ID: "s_1", Name: "Première"}}
	require.NoError(t, Write(store, "speakers", want))

	got := Read[testRecord](store, "speakers")
	assert.Equal(t, want, got)

	// files stay hand-editable
	raw, err := os.ReadFile(filepath.Join(store.Dir(), "speakers.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[\n  {"))
}

func TestPrepend_newestFirst(t *testing.T) {
	store := openStore(t)

	require.NoError(t, Prepend(store, "speakers", testRecord{ID: "s_1"}))
	require.NoError(t, Prepend(store, "speakers", testRecord{ID: "s_2"}))
	require.NoError(t, Prepend(store, "speakers", testRecord{ID: "s_3"}))

	got := Read[testRecord](store, "speakers")
	require.Len(t, got, 3)
	assert.Equal(t, "s_3", got[0].ID)
	assert.Equal(t, "s_1", got[2].ID)
}

func TestWrite_overwritesWholeCollection(t *testing.T) {
	store := openStore(t)

	require.NoError(t, Write(store, "speakers", []testRecord{{ID: "s_1"}, {ID: "s_2"}}))
	require.NoError(t, Write(store, "speakers", []testRecord{{ID: "s_3"}}))

	got := Read[testRecord](store, "speakers")
	require.Len(t, got, 1)
	assert.Equal(t, "s_3", got[0].ID)
}

func TestWrite_leavesNoTempFiles(t *testing.T) {
	store := openStore(t)

	require.NoError(t, Write(store, "speakers", []testRecord{{ID: "s_1"}}))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), ".json"), "unexpected file %s", e.Name())
	}
}

func TestInvalidate_dropsCachedContents(t *testing.T) {
	store := openStore(t)

	require.NoError(t, Write(store, "speakers", []testRecord{{ID: "s_1"}}))
	_ = Read[testRecord](store, "speakers") // prime the cache

	// replace the file behind the store's back
	err := os.WriteFile(filepath.Join(store.Dir(), "speakers.json"), []byte(`[{"id":"s_9"}]`), 0o644)
	require.NoError(t, err)

	store.Invalidate("speakers")
	got := Read[testRecord](store, "speakers")
	require.Len(t, got, 1)
	assert.Equal(t, "s_9", got[0].ID)
}

func TestOpen_createsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := Open(dir, nopLogger{})
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
