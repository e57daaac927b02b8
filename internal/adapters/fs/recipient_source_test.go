package fs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func sourceConfig(projectRoot, file string, minScore float64) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: projectRoot,
		Drop: &config.DropConfig{
			RecipientsFile: file,
			MinScore:       minScore,
		},
	}
}

func TestCSVRecipientSource_LoadQualified(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the qualification rules", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "addresses.csv",
			"address,score\n"+
				"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,42.5\n"+
				"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359,35\n"+
				"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB,34.9\n"+
				"not-an-address,80\n"+
				"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,36\n"+
				"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb,abc\n")

		source := NewCSVRecipientSource(sourceConfig(dir, "addresses.csv", 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.NoError(t, err)
		require.Len(t, result.Recipients, 3)

		// Lowercase input comes back checksummed; file order and duplicates
		// are preserved.
		assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", result.Recipients[0].Address)
		assert.Equal(t, 42.5, result.Recipients[0].Score)
		assert.Equal(t, 2, result.Recipients[0].Row)

		// The threshold is inclusive
		assert.Equal(t, "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", result.Recipients[1].Address)
		assert.Equal(t, 35.0, result.Recipients[1].Score)

		assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", result.Recipients[2].Address)
		assert.Equal(t, 6, result.Recipients[2].Row)

		assert.Equal(t, 6, result.TotalRows)
		assert.Equal(t, 2, result.SkippedScore)
		assert.Equal(t, 1, result.SkippedAddress)
		assert.Equal(t, filepath.Join(dir, "addresses.csv"), result.Source)
	})

	t.Run("headerless file loads every row", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "addresses.csv",
			"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,50\n"+
				"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359,40\n")

		source := NewCSVRecipientSource(sourceConfig(dir, "addresses.csv", 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.NoError(t, err)
		require.Len(t, result.Recipients, 2)
		assert.Equal(t, 1, result.Recipients[0].Row)
		assert.Equal(t, 2, result.Recipients[1].Row)
		assert.Equal(t, 2, result.TotalRows)
	})

	t.Run("first row with a non-numeric score is treated as a header", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "addresses.csv",
			"wallet,points\n"+
				"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,50\n")

		source := NewCSVRecipientSource(sourceConfig(dir, "addresses.csv", 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.NoError(t, err)
		require.Len(t, result.Recipients, 1)
		assert.Equal(t, 1, result.TotalRows)
	})

	t.Run("rows of empty fields are ignored but keep file positions", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "addresses.csv",
			"address,score\n"+
				"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,42\n"+
				",\n"+
				"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359,50\n")

		source := NewCSVRecipientSource(sourceConfig(dir, "addresses.csv", 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.NoError(t, err)
		require.Len(t, result.Recipients, 2)
		assert.Equal(t, 2, result.Recipients[0].Row)
		assert.Equal(t, 4, result.Recipients[1].Row)
		assert.Equal(t, 2, result.TotalRows)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		dir := t.TempDir()

		source := NewCSVRecipientSource(sourceConfig(dir, "addresses.csv", 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open recipients file")
		assert.Nil(t, result)
	})

	t.Run("unset recipients file", func(t *testing.T) {
		source := NewCSVRecipientSource(sourceConfig(t.TempDir(), "", 35), testLogger())
		_, err := source.LoadQualified(ctx)

		require.ErrorIs(t, err, domain.ErrNoRecipients)
	})

	t.Run("absolute path bypasses the project root", func(t *testing.T) {
		csvDir := t.TempDir()
		path := writeCSV(t, csvDir, "other.csv",
			"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed,50\n")

		source := NewCSVRecipientSource(sourceConfig(t.TempDir(), path, 35), testLogger())
		result, err := source.LoadQualified(ctx)

		require.NoError(t, err)
		require.Len(t, result.Recipients, 1)
		assert.Equal(t, path, result.Source)
	})
}
