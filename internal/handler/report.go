package handler

import (
	"context"
	"errors"

	"absence-bot/internal/models"
	"absence-bot/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// Привязка полей форм к block id модалок
var (
	recurringFieldBlocks = map[string]string{
		"Start":       blockStart,
		"End":         blockEnd,
		"Weekdays":    blockWeekdays,
		"AbsenceType": blockAbsenceType,
		"Reason":      blockReasonRec,
	}
	oneTimeFieldBlocks = map[string]string{
		"Date":        blockDate,
		"AbsenceType": blockAbsenceType,
		"Reason":      blockReasonOne,
	}
)

// startReport открывает первую модалку и заводит сессию формы
func (h *Handler) startReport(triggerID, userID string) {
	session := models.NewFormSession(userID)
	h.sessions.Put(session)

	view := buildBranchChoiceModal(session.ID)
	if _, err := h.client.API.OpenView(triggerID, view); err != nil {
		// Не открылась - эта попытка потеряна, пользователь кликнет еще раз
		logrus.WithError(err).Error("Failed to open absence modal")
		h.sessions.Delete(session.ID)
	}
}

// handleBranchChoice - переход с первого шага. Выбор ветки - чистая
// функция единственного ответа, больше ничего не читается.
func (h *Handler) handleBranchChoice(callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	session, ok := h.sessions.Get(callback.View.PrivateMetadata)
	if !ok {
		return expiredSessionResponse(blockRecurring)
	}

	selected := callback.View.State.Values[blockRecurring][actionRecurringSelect].SelectedOption.Value
	if selected == "" {
		return slack.NewErrorsViewSubmissionResponse(map[string]string{
			blockRecurring: "Please choose an option.",
		})
	}

	if selected == answerRecurring {
		session.Branch = models.BranchRecurring
		session.State = models.StateRecurringDetails
	} else {
		session.Branch = models.BranchOneTime
		session.State = models.StateOneTimeDetails
	}
	h.sessions.Put(session)

	next := buildDetailModal(session.Branch, session.ID)
	return slack.NewUpdateViewSubmissionResponse(&next)
}

func (h *Handler) handleRecurringSubmission(callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	session, ok := h.sessions.Get(callback.View.PrivateMetadata)
	if !ok || session.State != models.StateRecurringDetails {
		return expiredSessionResponse(blockStart)
	}

	values := callback.View.State.Values

	var weekdays []models.Weekday
	for _, opt := range values[blockWeekdays][actionWeekdays].SelectedOptions {
		day, err := models.ParseWeekday(opt.Value)
		if err != nil {
			logrus.Warnf("Ignoring weekday option %q: %s", opt.Value, err.Error())
			continue
		}
		weekdays = append(weekdays, day)
	}

	form := service.RecurringForm{
		ReporterID:    callback.User.ID,
		Start:         values[blockStart][actionStart].SelectedDate,
		End:           values[blockEnd][actionEnd].SelectedDate,
		Weekdays:      weekdays,
		AbsenceType:   values[blockAbsenceType][actionAbsenceType].SelectedOption.Value,
		ArrivalTime:   values[blockArrival][actionArrival].SelectedTime,
		DepartureTime: values[blockDeparture][actionDeparture].SelectedTime,
		Reason:        values[blockReasonRec][actionReasonRec].Value,
		Notes:         values[blockNotesRec][actionNotesRec].Value,
	}

	_, err := h.absenceService.SubmitRecurring(context.Background(), form)
	return h.finishSubmission(session, err, recurringFieldBlocks, blockWeekdays)
}

func (h *Handler) handleOneTimeSubmission(callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	session, ok := h.sessions.Get(callback.View.PrivateMetadata)
	if !ok || session.State != models.StateOneTimeDetails {
		return expiredSessionResponse(blockDate)
	}

	values := callback.View.State.Values

	form := service.OneTimeForm{
		ReporterID:    callback.User.ID,
		Date:          values[blockDate][actionDate].SelectedDate,
		AbsenceType:   values[blockAbsenceType][actionAbsenceType].SelectedOption.Value,
		ArrivalTime:   values[blockArrival][actionArrival].SelectedTime,
		DepartureTime: values[blockDeparture][actionDeparture].SelectedTime,
		Reason:        values[blockReasonOne][actionReasonOne].Value,
		Notes:         values[blockNotesOne][actionNotesOne].Value,
	}

	_, err := h.absenceService.SubmitOneTime(context.Background(), form)
	return h.finishSubmission(session, err, oneTimeFieldBlocks, blockDate)
}

// finishSubmission - терминальный переход. Ошибки полей возвращаются к
// форме (сессия остается, можно поправить и отправить снова), остальные
// ошибки переводят сессию в Failed с текстом сервиса как есть.
func (h *Handler) finishSubmission(
	session *models.FormSession,
	err error,
	fieldBlocks map[string]string,
	errorBlock string,
) *slack.ViewSubmissionResponse {
	if err == nil {
		session.State = models.StateSubmitted
		h.sessions.Delete(session.ID)
		return slack.NewUpdateViewSubmissionResponse(buildDoneModal())
	}

	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		return slack.NewErrorsViewSubmissionResponse(blockErrors(fieldErrs, fieldBlocks))
	}

	session.State = models.StateFailed
	h.sessions.Put(session)

	if errors.Is(err, service.ErrNoMatchingDates) {
		return slack.NewErrorsViewSubmissionResponse(map[string]string{
			blockWeekdays: service.ErrNoMatchingDates.Error(),
		})
	}

	logrus.WithError(err).Error("Absence submission failed")
	return slack.NewErrorsViewSubmissionResponse(map[string]string{
		errorBlock: err.Error(),
	})
}

func blockErrors(fieldErrs service.FieldErrors, fieldBlocks map[string]string) map[string]string {
	result := make(map[string]string, len(fieldErrs))
	for field, msg := range fieldErrs {
		if blockID, ok := fieldBlocks[field]; ok {
			result[blockID] = msg
		}
	}
	return result
}

func expiredSessionResponse(blockID string) *slack.ViewSubmissionResponse {
	return slack.NewErrorsViewSubmissionResponse(map[string]string{
		blockID: "This form has expired. Please start over.",
	})
}
