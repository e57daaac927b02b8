package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// recipientItem represents a selectable recipient in the multi-select
type recipientItem struct {
	recipient models.Recipient
	selected  bool
}

// multiSelectModel is the bubbletea model for multi-select
type multiSelectModel struct {
	items     []recipientItem
	cursor    int
	selected  map[int]bool
	title     string
	done      bool
	cancelled bool
}

// initialMultiSelectModel creates the initial model for multi-select
func initialMultiSelectModel(recipients []models.Recipient, title string) multiSelectModel {
	items := make([]recipientItem, len(recipients))
	selected := make(map[int]bool)
	for i, recipient := range recipients {
		items[i] = recipientItem{recipient: recipient, selected: false}
		selected[i] = false
	}
	return multiSelectModel{
		items:    items,
		cursor:   0,
		selected: selected,
		title:    title,
		done:     false,
	}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Quit must never confirm a selection; minting is irreversible
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			// Toggle selection
			m.selected[m.cursor] = !m.selected[m.cursor]
			m.items[m.cursor].selected = m.selected[m.cursor]
		case "a":
			// Select everything
			for i := range m.items {
				m.selected[i] = true
				m.items[i].selected = true
			}
		case "enter":
			// Check if at least one item is selected
			hasSelection := false
			for _, selected := range m.selected {
				if selected {
					hasSelection = true
					break
				}
			}
			if hasSelection {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the UI
func (m multiSelectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		checkbox := " "
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		} else {
			checkbox = color.New(color.FgWhite).Sprint("○")
		}

		address := color.New(color.FgWhite).Sprint(item.recipient.Address)
		score := color.New(color.FgYellow).Sprintf("(score %g)", item.recipient.Score)

		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, address, score))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))

	return b.String()
}

// SelectRecipients shows a multi-select interface and returns the chosen
// recipients in file order.
func SelectRecipients(recipients []models.Recipient, title string) ([]models.Recipient, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients to select")
	}

	model := initialMultiSelectModel(recipients, title)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := finalModel.(multiSelectModel)
	if !m.done || m.cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}

	// Collect selections in input order
	var picked []models.Recipient
	for i, item := range m.items {
		if m.selected[i] {
			picked = append(picked, item.recipient)
		}
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("no recipients selected")
	}

	return picked, nil
}
