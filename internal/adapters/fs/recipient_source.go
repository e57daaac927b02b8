package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// CSVRecipientSource reads address,score rows from the configured CSV file
// and applies the qualification rules: score at or above the threshold, and
// an address that canonicalizes to EIP-55 checksum form. Column positions
// are fixed: first column address, second column score.
type CSVRecipientSource struct {
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewCSVRecipientSource creates a new CSV recipient source
func NewCSVRecipientSource(cfg *config.RuntimeConfig, log *slog.Logger) *CSVRecipientSource {
	return &CSVRecipientSource{
		config: cfg,
		log:    log,
	}
}

// LoadQualified reads the file and returns the qualified rows in source
// order, duplicates kept.
func (s *CSVRecipientSource) LoadQualified(ctx context.Context) (*usecase.RecipientLoadResult, error) {
	if s.config.Drop == nil || s.config.Drop.RecipientsFile == "" {
		return nil, domain.ErrNoRecipients
	}

	path := s.config.Drop.RecipientsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.config.ProjectRoot, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipients file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipients file: %w", err)
	}

	result := &usecase.RecipientLoadResult{Source: path}
	threshold := s.config.Drop.MinScore

	first := true
	for i, row := range records {
		if blankRow(row) {
			continue
		}

		score, scoreErr := rowScore(row)

		// A leading row with a non-numeric score column is a header.
		if first {
			first = false
			if scoreErr != nil {
				continue
			}
		}

		result.TotalRows++

		if scoreErr != nil || score < threshold {
			result.SkippedScore++
			continue
		}

		raw := strings.TrimSpace(row[0])
		if !common.IsHexAddress(raw) {
			result.SkippedAddress++
			s.log.Debug("dropping recipient with invalid address", "row", i+1, "address", raw)
			continue
		}

		result.Recipients = append(result.Recipients, models.Recipient{
			Address: common.HexToAddress(raw).Hex(),
			Score:   score,
			Row:     i + 1,
		})
	}

	s.log.Debug("recipients loaded",
		"path", path,
		"rows", result.TotalRows,
		"qualified", len(result.Recipients),
		"skippedScore", result.SkippedScore,
		"skippedAddress", result.SkippedAddress)

	return result, nil
}

// blankRow reports whether the row carries no data at all.
func blankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// rowScore parses the score column.
func rowScore(row []string) (float64, error) {
	if len(row) < 2 {
		return 0, fmt.Errorf("missing score column")
	}
	return strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
}

// Ensure the adapter implements the interface
var _ usecase.RecipientSource = (*CSVRecipientSource)(nil)
