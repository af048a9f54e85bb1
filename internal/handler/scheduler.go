package handler

import (
	"context"
	"time"

	"absence-bot/internal/models"

	"github.com/sirupsen/logrus"
)

// RunScheduler раз в минуту сверяет время в настроенном часовом поясе
// с расписанием сводки
func (h *Handler) RunScheduler(ctx context.Context) {
	location, err := time.LoadLocation(h.config.Timezone)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to load timezone %s, falling back to UTC", h.config.Timezone)
		location = time.UTC
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	logrus.Infof("Summary scheduler started: %v at %s (%s)",
		h.config.SummaryWeekdays, h.config.SummaryTime, location)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now().In(location)
			if h.scheduledNow(now) {
				h.postSummary(h.config.SummaryChannelID)
			}
		}
	}
}

func (h *Handler) scheduledNow(now time.Time) bool {
	if now.Format("15:04") != h.config.SummaryTime {
		return false
	}
	day := models.WeekdayOf(now)
	for _, scheduled := range h.config.SummaryWeekdays {
		if scheduled == day {
			return true
		}
	}
	return false
}
