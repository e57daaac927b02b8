package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	reportPathStyle    = color.New(color.Faint)
)

// RunRenderer renders the final slab of a drop run
type RunRenderer struct {
	out io.Writer
}

// NewRunRenderer creates a new run renderer
func NewRunRenderer(out io.Writer) *RunRenderer {
	return &RunRenderer{out: out}
}

// RenderRun renders the run summary, the per-recipient outcomes and the
// report location. A run that never reached the chain renders a single line.
func (r *RunRenderer) RenderRun(result *usecase.RunDropResult) error {
	if result.NoRecipients {
		fmt.Fprintln(r.out, FormatError("No qualified addresses found or error reading CSV"))
		return nil
	}

	summary := result.Summary
	if summary == nil {
		return nil
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("=== Minting Summary ==="))
	fmt.Fprintln(r.out)

	// Only single-token holders count toward Succeeded, so the breakdown
	// sums to the tally.
	alreadyHeld := lo.CountBy(summary.Outcomes, func(o models.MintOutcome) bool {
		return o.Kind == models.OutcomeAlreadyHeld
	})

	t := newTable(r.out)
	t.AppendRow(table.Row{"Contract", summary.Contract})
	t.AppendRow(table.Row{"Chain ID", summary.ChainID})
	t.AppendRow(table.Row{"Sender", summary.Sender})
	t.AppendRow(table.Row{"Nonces", fmt.Sprintf("%d → %d (%d consumed)",
		summary.StartNonce, summary.EndNonce, summary.EndNonce-summary.StartNonce)})
	t.AppendRow(table.Row{"Duration", summary.FinishedAt.Sub(summary.StartedAt).Round(time.Second)})
	t.AppendRow(table.Row{"Processed", summary.Processed})
	t.AppendRow(table.Row{"Succeeded", fmt.Sprintf("%d (%d minted, %d already held)",
		summary.Succeeded, len(summary.Minted()), alreadyHeld)})
	t.AppendRow(table.Row{"Failed", summary.Failed})
	t.Render()

	if len(summary.Outcomes) > 0 {
		fmt.Fprintln(r.out)
		ot := newTable(r.out)
		ot.AppendHeader(table.Row{"#", "Address", "Outcome", "Detail"})
		for i, outcome := range summary.Outcomes {
			ot.AppendRow(table.Row{
				i + 1,
				outcome.Address,
				outcomeStyle(outcome.Kind).Sprint(outcomeLabel(outcome.Kind)),
				outcomeDetail(outcome),
			})
		}
		ot.Render()
	}

	if result.ReportPath != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, reportPathStyle.Sprintf("Report written to %s", result.ReportPath))
	}

	if result.Err != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("Run ended early, the summary covers processed recipients only"))
	}

	return nil
}

// outcomeDetail picks the table detail cell for an outcome.
func outcomeDetail(outcome models.MintOutcome) string {
	switch {
	case outcome.TxHash != "":
		return shortHash(outcome.TxHash)
	case outcome.Reason != "":
		return outcome.Reason
	default:
		return ""
	}
}
