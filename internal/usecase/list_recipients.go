package usecase

import (
	"context"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
)

// RecipientListResult contains the qualification filter's view of the source
type RecipientListResult struct {
	Load      *RecipientLoadResult
	Threshold float64
}

// ListRecipients is the use case for listing qualified recipients
type ListRecipients struct {
	config *config.RuntimeConfig
	source RecipientSource
	sink   ProgressSink
}

// NewListRecipients creates a new ListRecipients use case
func NewListRecipients(cfg *config.RuntimeConfig, source RecipientSource, sink ProgressSink) *ListRecipients {
	return &ListRecipients{
		config: cfg,
		source: source,
		sink:   sink,
	}
}

// Run loads the recipients file and applies the qualification rules.
func (uc *ListRecipients) Run(ctx context.Context) (*RecipientListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Reading recipients file",
		Spinner: true,
	})

	load, err := uc.source.LoadQualified(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(load.Recipients),
		Total:   load.TotalRows,
		Message: "Recipients loaded",
	})

	return &RecipientListResult{
		Load:      load,
		Threshold: uc.config.Drop.MinScore,
	}, nil
}
