package matrixdb

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	names, err := Default.List()
	require.NoError(t, err)
	require.Contains(t, names, "BLOSUM62")
	require.Contains(t, names, "NUC")
	require.Contains(t, names, "3Di")
	require.Contains(t, names, "PB")
	require.Contains(t, names, "MATCH")
	require.Contains(t, names, "IDENTITY")
}

func TestRead(t *testing.T) {
	text, err := Default.Read("BLOSUM62")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "#"))
	require.Contains(t, text, "BLOSUM")
}

func TestReadUnknown(t *testing.T) {
	_, err := Default.Read("NOSUCHMATRIX")
	var unknownErr *UnknownMatrixError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "NOSUCHMATRIX", unknownErr.Name)
}

func TestEveryMatrixParses(t *testing.T) {
	names, err := Default.List()
	require.NoError(t, err)
	for _, name := range names {
		text, err := Default.Read(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, text, name)
	}
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrices.db")
	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	// empty store
	names, err := store.List()
	require.NoError(t, err)
	require.Empty(t, names)
	_, err = store.Read("CUSTOM")
	var unknownErr *UnknownMatrixError
	require.ErrorAs(t, err, &unknownErr)

	text := "  A C\nA 1 0\nC 0 1"
	require.NoError(t, store.Put("CUSTOM", text))

	got, err := store.Read("CUSTOM")
	require.NoError(t, err)
	require.Equal(t, text, got)

	names, err = store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"CUSTOM"}, names)

	// overwrite
	require.NoError(t, store.Put("CUSTOM", text+" "))
	got, err = store.Read("CUSTOM")
	require.NoError(t, err)
	require.Equal(t, text+" ", got)
}

func TestBoltStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrices.db")
	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("CUSTOM", "  A\nA 1"))
	require.NoError(t, store.Close())

	store, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Read("CUSTOM")
	require.NoError(t, err)
	require.Equal(t, "  A\nA 1", got)
}
