package handler

import (
	"fmt"

	"absence-bot/internal/service"

	"github.com/slack-go/slack"
)

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("mrkdwn", text, false, false)
}

// buildSummaryBlocks собирает сообщение сводки: заголовок, разделитель,
// по блоку на запись (плюс контекст времени, если оно указано), итоговый
// счетчик. Без записей - фиксированное поздравление и никакого счетчика.
func buildSummaryBlocks(view *service.SummaryView) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("📝 Absences for %s", view.Date), true, false)),
		slack.NewDividerBlock(),
	}

	if len(view.Records) == 0 {
		return append(blocks, slack.NewSectionBlock(
			mrkdwn("🎉 *Great news!*\nNo absences reported for today."), nil, nil))
	}

	for _, record := range view.Records {
		blocks = append(blocks, slack.NewSectionBlock(
			mrkdwn(fmt.Sprintf("<@%s>\n%s", record.ReporterID, record.TypeLabel())), nil, nil))

		var timeElements []slack.MixedElement
		if record.ArrivalTime != "" {
			timeElements = append(timeElements, mrkdwn("🕐 Arriving: "+record.ArrivalTime))
		}
		if record.DepartureTime != "" {
			timeElements = append(timeElements, mrkdwn("🕐 Departing: "+record.DepartureTime))
		}
		if len(timeElements) > 0 {
			blocks = append(blocks, slack.NewContextBlock("", timeElements...))
		}
	}

	return append(blocks,
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			mrkdwn(fmt.Sprintf("📊 *Total absences: %d*", len(view.Records))), nil, nil))
}
