package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// SelectorAdapter handles interactive recipient selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) (*SelectorAdapter, error) {
	return &SelectorAdapter{config: cfg}, nil
}

// SelectRecipient picks one recipient from the qualified list
func (s *SelectorAdapter) SelectRecipient(ctx context.Context, recipients []models.Recipient, prompt string) (*models.Recipient, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients provided for selection")
	}

	if len(recipients) == 1 {
		return &recipients[0], nil
	}

	options := formatRecipientOptions(recipients)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &recipients[index], nil
}

// formatRecipientOptions creates display strings for recipient selection
func formatRecipientOptions(recipients []models.Recipient) []string {
	options := make([]string, len(recipients))
	for i, recipient := range recipients {
		address := color.New(color.FgWhite, color.Bold).Sprint(recipient.Address)
		score := color.New(color.FgBlue).Sprintf("score %g", recipient.Score)
		options[i] = fmt.Sprintf("%s (%s)", address, score)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.RecipientSelector = (*SelectorAdapter)(nil)
