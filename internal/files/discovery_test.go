package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faocli/internal/config"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindFeedFiles(t *testing.T) {
	tempDir := t.TempDir()
	feedDir := filepath.Join(tempDir, "feed")

	for _, name := range []string{
		"FAO_Orders_14092012.DAT",
		"FAO_Orders_13092012.DAT",
		"FAO_Trades_14092012.DAT",
		"FAO_Trades_13092012.dat",
		"readme.txt",
	} {
		writeTestFile(t, filepath.Join(feedDir, name))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(feedDir, "archive"), 0755))

	discovery := NewDiscovery(tempDir)

	t.Run("orders only", func(t *testing.T) {
		found, err := discovery.FindFeedFiles("feed", config.FeedOrdersPrefix)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "FAO_Orders_13092012.DAT", found[0].Name)
		assert.Equal(t, "FAO_Orders_14092012.DAT", found[1].Name)
	})

	t.Run("trades match extension case insensitively", func(t *testing.T) {
		found, err := discovery.FindFeedFiles("feed", config.FeedTradesPrefix)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "FAO_Trades_13092012.dat", found[0].Name)
		assert.Equal(t, "FAO_Trades_14092012.DAT", found[1].Name)
	})

	t.Run("empty prefix matches all feed files", func(t *testing.T) {
		found, err := discovery.FindFeedFiles("feed", "")
		require.NoError(t, err)
		assert.Len(t, found, 4)
	})

	t.Run("absolute directory", func(t *testing.T) {
		found, err := discovery.FindFeedFiles(feedDir, config.FeedOrdersPrefix)
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Equal(t, filepath.Join(feedDir, "FAO_Orders_13092012.DAT"), found[0].Path)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := discovery.FindFeedFiles("nope", "")
		require.Error(t, err)
	})
}

func TestFindCSVFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, filepath.Join(tempDir, "partitions", "FAO_Trades_13092012", "NIFTY-trades.csv"))
	writeTestFile(t, filepath.Join(tempDir, "partitions", "FAO_Trades_14092012", "NIFTY-trades.csv"))
	writeTestFile(t, filepath.Join(tempDir, "partitions", "FAO_Trades_14092012", "SBIN-trades.csv"))
	writeTestFile(t, filepath.Join(tempDir, "partitions", "FAO_Orders_14092012", "NIFTY-orders.csv"))
	writeTestFile(t, filepath.Join(tempDir, "partitions", "notes.txt"))

	discovery := NewDiscovery(tempDir)

	t.Run("pattern walks subdirectories", func(t *testing.T) {
		found, err := discovery.FindCSVFiles("partitions", "*-trades.csv")
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, filepath.Join(tempDir, "partitions", "FAO_Trades_13092012", "NIFTY-trades.csv"), found[0].Path)
		assert.Equal(t, "NIFTY-trades.csv", found[1].Name)
		assert.Equal(t, "SBIN-trades.csv", found[2].Name)
	})

	t.Run("empty pattern matches every csv", func(t *testing.T) {
		found, err := discovery.FindCSVFiles("partitions", "")
		require.NoError(t, err)
		assert.Len(t, found, 4)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := discovery.FindCSVFiles("nope", "")
		require.Error(t, err)
	})
}
