package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiskStorage_Save(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir, "/uploads", zap.NewNop())
	require.NoError(t, err)

	stored, err := storage.Save("facture.png", []byte("image-bytes"))
	require.NoError(t, err)

	require.Equal(t, "facture.png", stored.Name)
	require.True(t, strings.HasPrefix(stored.URL, "/uploads/"))
	require.True(t, strings.HasSuffix(stored.URL, ".png"))

	_, err = uuid.Parse(stored.Key)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, stored.Key+".png"))
	require.NoError(t, err)
	require.Equal(t, []byte("image-bytes"), data)
}

func TestDiskStorage_UniqueKeys(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)

	first, err := storage.Save("a.jpg", []byte("a"))
	require.NoError(t, err)
	second, err := storage.Save("a.jpg", []byte("b"))
	require.NoError(t, err)

	require.NotEqual(t, first.Key, second.Key)
	require.NotEqual(t, first.URL, second.URL)
}

func TestNewDiskStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStorage(dir, "/uploads", zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
