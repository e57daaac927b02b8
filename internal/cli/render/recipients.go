package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// RecipientsRenderer renders the qualified recipient list
type RecipientsRenderer struct {
	out io.Writer
}

// NewRecipientsRenderer creates a new recipients renderer
func NewRecipientsRenderer(out io.Writer) Renderer[*usecase.RecipientListResult] {
	return &RecipientsRenderer{out: out}
}

// Render prints the qualified rows plus a footer accounting for every
// dropped row.
func (r *RecipientsRenderer) Render(result *usecase.RecipientListResult) error {
	load := result.Load

	if len(load.Recipients) == 0 {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf(
			"No rows in %s qualify (score >= %g)", load.Source, result.Threshold)))
		return nil
	}

	fmt.Fprintf(r.out, "Qualified recipients in %s (score >= %g):\n\n", load.Source, result.Threshold)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Row", "Address", "Score"})
	for _, recipient := range load.Recipients {
		t.AppendRow(table.Row{recipient.Row, recipient.Address, fmt.Sprintf("%g", recipient.Score)})
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%d qualified of %d row(s)%s\n",
		len(load.Recipients), load.TotalRows, droppedNote(load))
	return nil
}

// droppedNote summarizes skipped rows, empty when nothing was skipped.
func droppedNote(load *usecase.RecipientLoadResult) string {
	var parts []string
	if load.SkippedScore > 0 {
		parts = append(parts, fmt.Sprintf("%d below threshold", load.SkippedScore))
	}
	if load.SkippedAddress > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid address(es)", load.SkippedAddress))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s skipped)", strings.Join(parts, ", "))
}
