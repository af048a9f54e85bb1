package handler

import (
	"testing"

	"absence-bot/internal/models"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockIDs(view slack.ModalViewRequest) []string {
	var ids []string
	for _, block := range view.Blocks.BlockSet {
		if input, ok := block.(*slack.InputBlock); ok {
			ids = append(ids, input.BlockID)
		}
	}
	return ids
}

func TestBuildBranchChoiceModal(t *testing.T) {
	view := buildBranchChoiceModal("session-1")

	assert.Equal(t, callbackBranchChoice, view.CallbackID)
	assert.Equal(t, "session-1", view.PrivateMetadata)
	assert.Equal(t, "Report Absence", view.Title.Text)
	assert.Equal(t, []string{blockRecurring}, blockIDs(view))
}

func TestBuildDetailModalRecurring(t *testing.T) {
	view := buildDetailModal(models.BranchRecurring, "session-1")

	assert.Equal(t, callbackRecurring, view.CallbackID)
	assert.Equal(t, "session-1", view.PrivateMetadata)
	assert.Equal(t, []string{
		blockStart, blockEnd, blockWeekdays,
		blockAbsenceType, blockArrival, blockDeparture,
		blockReasonRec, blockNotesRec,
	}, blockIDs(view))
}

func TestBuildDetailModalOneTime(t *testing.T) {
	view := buildDetailModal(models.BranchOneTime, "session-1")

	assert.Equal(t, callbackOneTime, view.CallbackID)
	ids := blockIDs(view)
	assert.Equal(t, []string{
		blockDate,
		blockAbsenceType, blockArrival, blockDeparture,
		blockReasonOne, blockNotesOne,
	}, ids)
	assert.NotContains(t, ids, blockWeekdays)
}

func TestBuildDetailModalUnknownBranch(t *testing.T) {
	// Неизвестная ветка - ошибка программиста, не тихий дефолт
	require.Panics(t, func() {
		buildDetailModal("weekly", "session-1")
	})
}

func TestOptionalBlocks(t *testing.T) {
	view := buildDetailModal(models.BranchOneTime, "session-1")

	optional := map[string]bool{}
	for _, block := range view.Blocks.BlockSet {
		if input, ok := block.(*slack.InputBlock); ok {
			optional[input.BlockID] = input.Optional
		}
	}

	assert.True(t, optional[blockArrival])
	assert.True(t, optional[blockDeparture])
	assert.True(t, optional[blockNotesOne])
	assert.False(t, optional[blockDate])
	assert.False(t, optional[blockReasonOne])
}

func TestBuildDoneModal(t *testing.T) {
	view := buildDoneModal()
	assert.Equal(t, "Done", view.Title.Text)

	section, ok := view.Blocks.BlockSet[0].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Absence recorded successfully!", section.Text.Text)
}
