package render

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// outcomeLabel renders an outcome kind as a human heading, e.g.
// ALREADY_HELD_MULTIPLE becomes "Already Held Multiple".
func outcomeLabel(kind models.OutcomeKind) string {
	words := strings.ReplaceAll(string(kind), "_", " ")
	return cases.Title(language.English).String(strings.ToLower(words))
}

// outcomeStyle picks the color for an outcome kind.
func outcomeStyle(kind models.OutcomeKind) *color.Color {
	switch kind {
	case models.OutcomeMinted:
		return color.New(color.FgGreen)
	case models.OutcomeAlreadyHeld:
		return color.New(color.FgCyan)
	case models.OutcomeAlreadyHeldMultiple:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// shortHash trims a transaction hash for table cells.
func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:10] + "…" + hash[len(hash)-4:]
}

// newTable returns a table writer in the house style: light box drawing,
// no borders, columns spaced by padding only.
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	return t
}
