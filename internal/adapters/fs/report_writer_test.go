package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

func TestRunReportWriter_Write(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot: dir,
		DataDir:     filepath.Join(dir, ".mintdrop"),
	}

	summary := &models.RunSummary{
		Contract:   "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		ChainID:    84532,
		Sender:     "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		StartNonce: 7,
		EndNonce:   9,
		Processed:  2,
		Succeeded:  2,
		StartedAt:  time.Date(2026, 8, 22, 10, 30, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 22, 10, 31, 12, 0, time.UTC),
		Outcomes: []models.MintOutcome{
			{
				Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
				Kind:    models.OutcomeMinted,
				TxHash:  "0x8f3c1a2b4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8",
			},
			{
				Address: "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
				Kind:    models.OutcomeAlreadyHeld,
			},
		},
	}

	writer := NewRunReportWriter(cfg, testLogger())
	path, err := writer.Write(ctx, summary)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.DataDir, "runs", "run-20260822-103000.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var stored models.RunSummary
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, summary.Contract, stored.Contract)
	assert.Equal(t, uint64(7), stored.StartNonce)
	require.Len(t, stored.Outcomes, 2)
	assert.Equal(t, models.OutcomeMinted, stored.Outcomes[0].Kind)
	// Empty tx hash stays out of the artifact
	assert.Empty(t, stored.Outcomes[1].TxHash)
}
