package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// RunDropParams contains parameters for running a drop
type RunDropParams struct {
	// Recipients overrides loading from the configured source when non-nil.
	// The caller is expected to have taken them from ListRecipients, possibly
	// reduced to a picked subset.
	Recipients []models.Recipient
}

// RunDropResult contains the result of a drop run
type RunDropResult struct {
	// Summary is nil when no recipients qualified
	Summary *models.RunSummary

	// NoRecipients is set when the run ended before any chain call
	NoRecipients bool

	// ReportPath is the stored run report, empty if none was written
	ReportPath string

	// Err carries an orchestrator-level failure. Per-recipient failures live
	// in Summary.Outcomes, not here.
	Err error
}

// RunDrop is the use case driving a whole drop run: load recipients, mint,
// notify the summary and store the run report.
type RunDrop struct {
	config   *config.RuntimeConfig
	source   RecipientSource
	minter   *Minter
	notifier Notifier
	report   RunReportWriter
	sink     ProgressSink
}

// NewRunDrop creates a new RunDrop use case
func NewRunDrop(
	cfg *config.RuntimeConfig,
	source RecipientSource,
	minter *Minter,
	notifier Notifier,
	report RunReportWriter,
	sink ProgressSink,
) *RunDrop {
	return &RunDrop{
		config:   cfg,
		source:   source,
		minter:   minter,
		notifier: notifier,
		report:   report,
		sink:     sink,
	}
}

// Run executes the drop. A missing or unreadable recipients file is handled
// like an empty qualification result: one notification, no chain calls, a
// clean result.
func (uc *RunDrop) Run(ctx context.Context, params RunDropParams) (*RunDropResult, error) {
	recipients := params.Recipients
	if recipients == nil {
		load, err := uc.source.LoadQualified(ctx)
		if err != nil {
			uc.sink.Error(fmt.Sprintf("❌ Error reading CSV: %v", err))
			return uc.empty(ctx), nil
		}
		recipients = load.Recipients
	}

	if len(recipients) == 0 {
		return uc.empty(ctx), nil
	}

	summary, err := uc.minter.Run(ctx, MintBatchParams{Recipients: recipients})
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Drop finished"})
	if err != nil {
		uc.notifier.Notify(ctx, fmt.Sprintf("\n❌ Critical error during minting process: %v", err))
	}

	result := &RunDropResult{Summary: summary, Err: err}
	if summary == nil {
		return result, nil
	}

	if err == nil {
		uc.notifySummary(ctx, summary)
	}

	path, werr := uc.report.Write(ctx, summary)
	if werr != nil {
		uc.sink.Error(fmt.Sprintf("Failed to write run report: %v", werr))
	} else {
		result.ReportPath = path
	}

	return result, nil
}

// empty notifies the no-recipients case and returns the clean result.
func (uc *RunDrop) empty(ctx context.Context) *RunDropResult {
	uc.notifier.Notify(ctx, "❌ No qualified addresses found or error reading CSV")
	return &RunDropResult{NoRecipients: true}
}

// notifySummary sends the final tallies plus the success and failure lists.
func (uc *RunDrop) notifySummary(ctx context.Context, summary *models.RunSummary) {
	uc.notifier.Notify(ctx, fmt.Sprintf(
		"\n=== Minting Summary ===\nTotal addresses processed: %d\nSuccessful mints: %d\nFailed mints: %d",
		summary.Processed, summary.Succeeded, summary.Failed))

	if minted := summary.Minted(); len(minted) > 0 {
		lines := make([]string, len(minted))
		for i, o := range minted {
			lines[i] = fmt.Sprintf("Address: %s\nTX Hash: %s", o.Address, o.TxHash)
		}
		uc.notifier.Notify(ctx, "\n✅ Successful mints:\n"+strings.Join(lines, "\n"))
	}

	if failures := summary.Failures(); len(failures) > 0 {
		lines := make([]string, len(failures))
		for i, o := range failures {
			lines[i] = fmt.Sprintf("Address: %s\nError: %s", o.Address, o.Reason)
		}
		uc.notifier.Notify(ctx, "\n❌ Failed mints:\n"+strings.Join(lines, "\n"))
	}
}
