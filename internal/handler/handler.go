package handler

import (
	"time"

	"absence-bot/internal/config"
	"absence-bot/internal/models"
	"absence-bot/internal/service"
	"absence-bot/pkg/slackclient"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

// Брошенные модалки живут в сторе не дольше этого времени
const sessionTTL = time.Hour

const (
	shortcutReportAbsence = "report_absence"
	shortcutDailySummary  = "daily_absence_summary"

	commandReportAbsence = "/report-absence"
	commandSummary       = "/absence-summary"
)

type Handler struct {
	client         *slackclient.Client
	absenceService *service.AbsenceService
	summaryService *service.SummaryService
	sessions       *models.SessionStore
	config         *config.BotConfig
}

func NewHandler(
	client *slackclient.Client,
	absenceService *service.AbsenceService,
	summaryService *service.SummaryService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:         client,
		absenceService: absenceService,
		summaryService: summaryService,
		sessions:       models.NewSessionStore(sessionTTL),
		config:         cfg,
	}
}

// HandleEvents крутит цикл событий Socket Mode
func (h *Handler) HandleEvents() {
	for evt := range h.client.Socket.Events {
		switch evt.Type {
		case socketmode.EventTypeConnected:
			logrus.Info("Connected to Slack")

		case socketmode.EventTypeConnectionError:
			logrus.Error("Slack connection failed, retrying...")

		case socketmode.EventTypeSlashCommand:
			cmd, ok := evt.Data.(slack.SlashCommand)
			if !ok {
				continue
			}
			h.client.Socket.Ack(*evt.Request)
			h.handleSlashCommand(cmd)

		case socketmode.EventTypeInteractive:
			h.handleInteraction(evt)
		}
	}
}

func (h *Handler) handleSlashCommand(cmd slack.SlashCommand) {
	switch cmd.Command {
	case commandReportAbsence:
		h.startReport(cmd.TriggerID, cmd.UserID)
	case commandSummary:
		// Ручной запуск шлет в тот же канал, что и расписание
		h.postSummary(h.config.SummaryChannelID)
	default:
		logrus.Warnf("Unknown slash command: %s", cmd.Command)
	}
}

// handleInteraction разбирает интерактивные события. Ack для view_submission
// несет payload ответа (update следующей модалки или ошибки полей).
func (h *Handler) handleInteraction(evt socketmode.Event) {
	callback, ok := evt.Data.(slack.InteractionCallback)
	if !ok {
		return
	}

	switch callback.Type {
	case slack.InteractionTypeShortcut:
		h.client.Socket.Ack(*evt.Request)
		h.handleShortcut(callback)

	case slack.InteractionTypeViewSubmission:
		if payload := h.handleViewSubmission(callback); payload != nil {
			h.client.Socket.Ack(*evt.Request, payload)
		} else {
			h.client.Socket.Ack(*evt.Request)
		}

	default:
		h.client.Socket.Ack(*evt.Request)
	}
}

func (h *Handler) handleShortcut(callback slack.InteractionCallback) {
	switch callback.CallbackID {
	case shortcutReportAbsence:
		h.startReport(callback.TriggerID, callback.User.ID)
	case shortcutDailySummary:
		h.postSummary(h.config.SummaryChannelID)
	default:
		logrus.Warnf("Unknown shortcut: %s", callback.CallbackID)
	}
}

func (h *Handler) handleViewSubmission(callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	switch callback.View.CallbackID {
	case callbackBranchChoice:
		return h.handleBranchChoice(callback)
	case callbackRecurring:
		return h.handleRecurringSubmission(callback)
	case callbackOneTime:
		return h.handleOneTimeSubmission(callback)
	}

	logrus.Warnf("Unknown view submission: %s", callback.View.CallbackID)
	return nil
}
