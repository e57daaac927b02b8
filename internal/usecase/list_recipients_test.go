package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

func TestListRecipients(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the load result with the configured threshold", func(t *testing.T) {
		load := &usecase.RecipientLoadResult{
			Recipients:   []models.Recipient{{Address: recipientA, Score: 42, Row: 2}},
			Source:       "addresses.csv",
			TotalRows:    4,
			SkippedScore: 3,
		}

		source := new(MockRecipientSource)
		source.On("LoadQualified", mock.Anything).Return(load, nil)

		sink := &recorderSink{}

		uc := usecase.NewListRecipients(testConfig(), source, sink)
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, load, result.Load)
		assert.Equal(t, 35.0, result.Threshold)

		require.Len(t, sink.events, 2)
		assert.Equal(t, "loading", sink.events[0].Stage)
		assert.Equal(t, "complete", sink.events[1].Stage)

		source.AssertExpectations(t)
	})

	t.Run("propagates source errors", func(t *testing.T) {
		source := new(MockRecipientSource)
		source.On("LoadQualified", mock.Anything).Return(nil, errors.New("failed to open recipients file"))

		sink := &recorderSink{}

		uc := usecase.NewListRecipients(testConfig(), source, sink)
		result, err := uc.Run(ctx)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 0, sink.stageCount("complete"))
	})
}
