package archive_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/topogenome/archive"
	"github.com/stretchr/testify/require"
)

const pcuKey = "3 1 1 1 0 0 3 1 1 0 1 0 3 1 1 0 0 1"
const diaKey = "3 1 2 0 0 0 3 1 2 1 0 0 3 1 2 0 1 0 3 1 2 0 0 1"

func TestPutLookupRemove(t *testing.T) {
	a := archive.New()
	_, ok := a.Lookup(pcuKey)
	require.False(t, ok)

	a.Put(pcuKey, "pcu")
	name, ok := a.Lookup(pcuKey)
	require.True(t, ok)
	require.Equal(t, "pcu", name)

	require.True(t, a.Remove(pcuKey))
	require.False(t, a.Remove(pcuKey))
	_, ok = a.Lookup(pcuKey)
	require.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	a := archive.New()
	a.Put(pcuKey, "pcu")
	a.Put(diaKey, "dia")

	var buf bytes.Buffer
	require.NoError(t, a.Save(&buf))

	loaded, err := archive.Load(&buf, false)
	require.NoError(t, err)
	name, ok := loaded.Lookup(pcuKey)
	require.True(t, ok)
	require.Equal(t, "pcu", name)
	name, ok = loaded.Lookup(diaKey)
	require.True(t, ok)
	require.Equal(t, "dia", name)
	require.Equal(t, 2, loaded.Len())
}

func TestLoadRejectsVersionMismatchUnlessForced(t *testing.T) {
	body := "Made by topogenome v0.0.1\nkey " + pcuKey + "\nid pcu\n"
	_, err := archive.Load(bytes.NewBufferString(body), false)
	require.Error(t, err)
	require.True(t, errors.Is(err, archive.ErrVersionMismatch))

	a, err := archive.Load(bytes.NewBufferString(body), true)
	require.NoError(t, err)
	name, ok := a.Lookup(pcuKey)
	require.True(t, ok)
	require.Equal(t, "pcu", name)
}

func TestLoadRejectsMalformedHeader(t *testing.T) {
	_, err := archive.Load(bytes.NewBufferString("not a header\n"), false)
	require.Error(t, err)
	require.True(t, errors.Is(err, archive.ErrMalformed))
}

func TestLoadRejectsDanglingKey(t *testing.T) {
	body := "Made by topogenome v1.0.0\nkey " + pcuKey + "\n"
	_, err := archive.Load(bytes.NewBufferString(body), false)
	require.Error(t, err)
	require.True(t, errors.Is(err, archive.ErrDanglingKey))
}

func TestMergeJoinsDuplicateNames(t *testing.T) {
	a := archive.New()
	a.Put(pcuKey, "pcu")
	b := archive.New()
	b.Put(pcuKey, "alpha-po")

	a.Merge(b)
	name, ok := a.Lookup(pcuKey)
	require.True(t, ok)
	require.Equal(t, "pcu, alpha-po", name)

	// Merging the same name again must not duplicate it.
	c := archive.New()
	c.Put(pcuKey, "pcu")
	a.Merge(c)
	name, _ = a.Lookup(pcuKey)
	require.Equal(t, "pcu, alpha-po", name)
}

func TestSaveFileAtomicAndLoadDir(t *testing.T) {
	dir := t.TempDir()

	a := archive.New()
	a.Put(pcuKey, "pcu")
	require.NoError(t, a.SaveFile(filepath.Join(dir, "nets-a.txt")))

	b := archive.New()
	b.Put(diaKey, "dia")
	require.NoError(t, b.SaveFile(filepath.Join(dir, "nets-b.txt")))

	merged, err := archive.LoadDir(dir, false)
	require.NoError(t, err)
	require.Equal(t, 2, merged.Len())
	name, ok := merged.Lookup(pcuKey)
	require.True(t, ok)
	require.Equal(t, "pcu", name)

	// No stray temp files should survive a successful SaveFile.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
