package handler

import (
	"fmt"
	"testing"

	"absence-bot/internal/models"
	"absence-bot/internal/service"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBlocks(blocks []slack.Block) (sections, contexts, dividers int) {
	for _, block := range blocks {
		switch block.(type) {
		case *slack.SectionBlock:
			sections++
		case *slack.ContextBlock:
			contexts++
		case *slack.DividerBlock:
			dividers++
		}
	}
	return
}

func sectionTexts(blocks []slack.Block) []string {
	var texts []string
	for _, block := range blocks {
		if section, ok := block.(*slack.SectionBlock); ok {
			texts = append(texts, section.Text.Text)
		}
	}
	return texts
}

func TestBuildSummaryBlocksEmpty(t *testing.T) {
	view := &service.SummaryView{Date: "1/6/2025"}

	blocks := buildSummaryBlocks(view)

	// Заголовок, разделитель и поздравление - счетчика нет
	require.Len(t, blocks, 3)
	texts := sectionTexts(blocks)
	require.Len(t, texts, 1)
	assert.Equal(t, "🎉 *Great news!*\nNo absences reported for today.", texts[0])
	for _, text := range texts {
		assert.NotContains(t, text, "Total absences")
	}
}

func TestBuildSummaryBlocksRecords(t *testing.T) {
	view := &service.SummaryView{
		Date: "1/6/2025",
		Records: []models.AbsenceRecord{
			{ReporterID: "U123", AbsenceType: models.AbsenceTypeFull},
			{ReporterID: "U456", AbsenceType: models.AbsenceTypePartial, ArrivalTime: "10:30"},
			{ReporterID: "U789", AbsenceType: models.AbsenceTypePartial, ArrivalTime: "10:00", DepartureTime: "15:00"},
		},
	}

	blocks := buildSummaryBlocks(view)
	sections, contexts, dividers := countBlocks(blocks)

	// По секции на запись плюс счетчик
	assert.Equal(t, 4, sections)
	// Контекст времени только у записей со временем
	assert.Equal(t, 2, contexts)
	assert.Equal(t, 2, dividers)

	texts := sectionTexts(blocks)
	assert.Contains(t, texts[0], "<@U123>")
	assert.Contains(t, texts[0], "Full Meeting Absence")
	assert.Equal(t, "📊 *Total absences: 3*", texts[len(texts)-1])
}

func TestBuildSummaryBlocksFooterCount(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		records := make([]models.AbsenceRecord, n)
		for i := range records {
			records[i] = models.AbsenceRecord{ReporterID: fmt.Sprintf("U%d", i), AbsenceType: models.AbsenceTypeFull}
		}
		view := &service.SummaryView{Date: "1/6/2025", Records: records}

		texts := sectionTexts(buildSummaryBlocks(view))
		assert.Equal(t, fmt.Sprintf("📊 *Total absences: %d*", n), texts[len(texts)-1])
	}
}

func TestBuildSummaryBlocksNoTimesNoContext(t *testing.T) {
	view := &service.SummaryView{
		Date: "1/6/2025",
		Records: []models.AbsenceRecord{
			{ReporterID: "U123", AbsenceType: models.AbsenceTypePartial},
		},
	}

	_, contexts, _ := countBlocks(buildSummaryBlocks(view))
	assert.Zero(t, contexts)
}
