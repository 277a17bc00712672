package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/cas"
	"go.trai.ch/cssinjs/internal/core/domain"
)

func snapshot() domain.Snapshot {
	return domain.Snapshot{
		SourceHash: "1x2y3z",
		Styles: []domain.Extracted{{
			Attrs: []domain.Attr{{Key: domain.AttrToken, Val: "rqtnqb"}, {Key: domain.AttrMark, Val: "abc"}},
			CSS:   ".box{width:93px;}",
		}},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStoreWithDir(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	require.NoError(t, store.Put("/work/cssinjs.yaml", snapshot()))

	got, err := store.Get("/work/cssinjs.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot(), *got)

	other, err := store.Get("/other/cssinjs.yaml")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	first, err := cas.NewStoreWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put("cssinjs.yaml", snapshot()))

	second, err := cas.NewStoreWithDir(dir)
	require.NoError(t, err)
	got, err := second.Get("./cssinjs.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1x2y3z", got.SourceHash)
}

func TestStore_Overwrite(t *testing.T) {
	store, err := cas.NewStoreWithDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("a.yaml", snapshot()))
	next := snapshot()
	next.SourceHash = "changed"
	require.NoError(t, store.Put("a.yaml", next))

	got, err := store.Get("a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.SourceHash)
}

func TestStore_CorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStoreWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put("a.yaml", snapshot()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), domain.FilePerm))

	_, err = store.Get("a.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestNewStoreWithDir_Unwritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	_, err := cas.NewStoreWithDir(filepath.Join(file, "store"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
