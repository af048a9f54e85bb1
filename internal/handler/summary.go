package handler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// postSummary читает сегодняшние отсутствия и шлет сводку в канал.
// Без повторов: не получилось - ошибка в лог, следующий запуск по расписанию.
func (h *Handler) postSummary(channelID string) {
	view, err := h.summaryService.TodaySummary(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Failed to build absence summary")
		return
	}

	_, _, err = h.client.API.PostMessage(channelID,
		slack.MsgOptionBlocks(buildSummaryBlocks(view)...),
		slack.MsgOptionText(fmt.Sprintf("Absences for %s", view.Date), false),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionDisableMediaUnfurl(),
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to send absence summary")
		return
	}

	logrus.Infof("Absence summary sent to %s", channelID)
}
