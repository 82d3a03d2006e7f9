package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SetGetRemove(t *testing.T) {
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "client.json"))
	require.NoError(t, err)

	_, ok := s.Get(KeyToken)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyToken, "abc"))
	value, ok := s.Get(KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, s.Remove(KeyToken))
	_, ok = s.Get(KeyToken)
	assert.False(t, ok)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")

	first, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyToken, "abc"))
	require.NoError(t, first.Set(KeyTheme, "light"))

	second, err := NewFileStorage(path)
	require.NoError(t, err)

	value, ok := second.Get(KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
	value, ok = second.Get(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestFileStorage_CorruptedFileStartsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte("{не json"), 0600))

	s, err := NewFileStorage(path)
	require.NoError(t, err)

	_, ok := s.Get(KeyToken)
	assert.False(t, ok)

	// запись поверх повреждённого файла возвращает его в рабочее состояние
	require.NoError(t, s.Set(KeyToken, "abc"))
	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	value, ok := reopened.Get(KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}
