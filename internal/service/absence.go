// internal/service/absence_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"absence-bot/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// ErrNoMatchingDates - в диапазоне не нашлось ни одной подходящей даты.
// Пустая запись в таблицу не делается.
var ErrNoMatchingDates = errors.New("No dates in the range match the selected weekdays.")

// SheetsAppender - запись строк в таблицу
type SheetsAppender interface {
	AppendRows(ctx context.Context, rangeName string, rows [][]string) error
}

// SlackMessenger - нужные методы slack.Client (профиль, личка, отправка)
type SlackMessenger interface {
	GetUserProfile(params *slack.GetUserProfileParameters) (*slack.UserProfile, error)
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// FieldErrors - ошибки валидации по полям формы. Имя поля структуры ->
// сообщение для пользователя; хендлер сам привязывает их к block id.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OneTimeForm - разовое отсутствие
type OneTimeForm struct {
	ReporterID    string `validate:"required"`
	Date          string `validate:"required,datetime=2006-01-02"`
	AbsenceType   string `validate:"required,oneof=full partial"`
	ArrivalTime   string
	DepartureTime string
	Reason        string `validate:"required"`
	Notes         string
}

// RecurringForm - повторяющееся отсутствие. Проверки start <= end нет
// намеренно: перевернутый диапазон разворачивается в ноль дат и дает
// ошибку "нет подходящих дат", а не ошибку поля.
type RecurringForm struct {
	ReporterID    string           `validate:"required"`
	Start         string           `validate:"required,datetime=2006-01-02"`
	End           string           `validate:"required,datetime=2006-01-02"`
	Weekdays      []models.Weekday `validate:"required,min=1"`
	AbsenceType   string           `validate:"required,oneof=full partial"`
	ArrivalTime   string
	DepartureTime string
	Reason        string `validate:"required"`
	Notes         string
}

type AbsenceService struct {
	sheets       SheetsAppender
	slack        SlackMessenger
	appendRange  string
	notifyUserID string
	validate     *validator.Validate
	logger       *logrus.Logger
}

func NewAbsenceService(
	sheets SheetsAppender,
	slackAPI SlackMessenger,
	appendRange string,
	notifyUserID string,
) *AbsenceService {
	return &AbsenceService{
		sheets:       sheets,
		slack:        slackAPI,
		appendRange:  appendRange,
		notifyUserID: notifyUserID,
		validate:     validator.New(),
		logger:       logrus.New(),
	}
}

// SubmitOneTime записывает разовое отсутствие одной строкой и шлет
// best-effort уведомление в личку
func (s *AbsenceService) SubmitOneTime(ctx context.Context, form OneTimeForm) ([]models.AbsenceRecord, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	record := models.AbsenceRecord{
		Name:          s.reporterName(form.ReporterID),
		ReporterID:    form.ReporterID,
		Date:          form.Date,
		AbsenceType:   form.AbsenceType,
		ArrivalTime:   form.ArrivalTime,
		DepartureTime: form.DepartureTime,
		Reason:        form.Reason,
		Notes:         form.Notes,
	}

	if err := s.sheets.AppendRows(ctx, s.appendRange, [][]string{record.Row()}); err != nil {
		return nil, fmt.Errorf("failed to save absence to the sheet: %w", err)
	}

	// Провал уведомления не отменяет успешную запись
	s.notify(record)

	s.logger.Infof("Recorded one-time absence for %s on %s", form.ReporterID, form.Date)
	return []models.AbsenceRecord{record}, nil
}

// SubmitRecurring разворачивает правило повторения в набор дат и пишет
// все строки одним вызовом
func (s *AbsenceService) SubmitRecurring(ctx context.Context, form RecurringForm) ([]models.AbsenceRecord, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	// Формат уже проверен валидатором
	start, _ := time.Parse(models.DateLayout, form.Start)
	end, _ := time.Parse(models.DateLayout, form.End)

	spec := models.RecurrenceSpec{
		Start:    start,
		End:      end,
		Weekdays: form.Weekdays,
	}

	dates := spec.Expand()
	if len(dates) == 0 {
		return nil, ErrNoMatchingDates
	}

	name := s.reporterName(form.ReporterID)

	records := make([]models.AbsenceRecord, 0, len(dates))
	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		record := models.AbsenceRecord{
			Name:          name,
			ReporterID:    form.ReporterID,
			Date:          date.Format(models.DateLayout),
			AbsenceType:   form.AbsenceType,
			ArrivalTime:   form.ArrivalTime,
			DepartureTime: form.DepartureTime,
			Reason:        form.Reason,
			Notes:         form.Notes,
		}
		records = append(records, record)
		rows = append(rows, record.Row())
	}

	if err := s.sheets.AppendRows(ctx, s.appendRange, rows); err != nil {
		return nil, fmt.Errorf("failed to save absence to the sheet: %w", err)
	}

	s.logger.Infof("Recorded %d recurring absence dates for %s", len(records), form.ReporterID)
	return records, nil
}

// validateForm переводит ошибки validator'а в FieldErrors
func (s *AbsenceService) validateForm(form interface{}) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = fieldMessage(fe)
	}
	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "Please fill out this field."
	case "datetime":
		return "Expected a date in YYYY-MM-DD format."
	case "oneof":
		return "Unsupported value."
	}
	return "Invalid value."
}

// reporterName достает отображаемое имя из профиля, при любой ошибке
// откатывается на сам id
func (s *AbsenceService) reporterName(userID string) string {
	profile, err := s.slack.GetUserProfile(&slack.GetUserProfileParameters{UserID: userID})
	if err != nil {
		s.logger.WithError(err).Warnf("Failed to fetch profile for %s, using id", userID)
		return userID
	}
	if profile.RealName == "" {
		return userID
	}
	return profile.RealName
}

// notify шлет личное сообщение о новом отсутствии. Любая ошибка здесь
// логируется и глотается.
func (s *AbsenceService) notify(record models.AbsenceRecord) {
	if s.notifyUserID == "" {
		return
	}

	channel, _, _, err := s.slack.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{s.notifyUserID},
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to open DM channel to notify user")
		return
	}

	_, _, err = s.slack.PostMessage(channel.ID,
		slack.MsgOptionBlocks(notificationBlocks(record)...),
		slack.MsgOptionText(fmt.Sprintf("Absence reported for %s on %s", record.Name, record.Date), false),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionDisableMediaUnfurl(),
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to send absence notification")
	}
}

func notificationBlocks(record models.AbsenceRecord) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text",
				fmt.Sprintf("📝 Absence reported for %s", record.Date), true, false)),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*%s* <@%s>\n*Type:* %s", record.Name, record.ReporterID, record.DetailedTypeLabel()),
				false, false),
			nil, nil),
	}

	var timeElements []slack.MixedElement
	if record.ArrivalTime != "" {
		timeElements = append(timeElements,
			slack.NewTextBlockObject("mrkdwn", "🕐 Arriving: "+record.ArrivalTime, false, false))
	}
	if record.DepartureTime != "" {
		timeElements = append(timeElements,
			slack.NewTextBlockObject("mrkdwn", "🕐 Departing: "+record.DepartureTime, false, false))
	}
	if len(timeElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", timeElements...))
	}

	detailText := fmt.Sprintf("*Reason:* %s", record.Reason)
	if record.Notes != "" {
		detailText += fmt.Sprintf("\n*Notes:* %s", record.Notes)
	}
	blocks = append(blocks,
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", detailText, false, false),
			nil, nil),
		slack.NewDividerBlock(),
	)

	return blocks
}
