package handler

import (
	"fmt"
	"strconv"

	"absence-bot/internal/models"

	"github.com/slack-go/slack"
)

// callback id модалок - по ним диспетчеризуются view_submission
const (
	callbackBranchChoice = "absence_type_modal"
	callbackRecurring    = "recurring_absence_modal"
	callbackOneTime      = "one_time_absence_modal"
)

// block id / action id полей форм
const (
	blockRecurring        = "recurring_block"
	actionRecurringSelect = "recurring_select"

	blockStart  = "start_block"
	actionStart = "start"

	blockEnd  = "end_block"
	actionEnd = "end"

	blockWeekdays  = "weekdays_block"
	actionWeekdays = "weekdays"

	blockDate  = "date_block"
	actionDate = "date"

	blockAbsenceType  = "absence_type_block"
	actionAbsenceType = "absence_type"

	blockArrival  = "arrival_time_block"
	actionArrival = "arrival_time"

	blockDeparture  = "departure_time_block"
	actionDeparture = "departure_time"

	blockReasonRec  = "reason_block_rec"
	actionReasonRec = "reason_rec"

	blockNotesRec  = "notes_block_rec"
	actionNotesRec = "notes_rec"

	blockReasonOne  = "reason_block_one"
	actionReasonOne = "reason_one"

	blockNotesOne  = "notes_block_one"
	actionNotesOne = "notes_one"
)

// Ответы первого шага
const (
	answerRecurring = "yes"
	answerOneTime   = "no"
)

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("plain_text", text, false, false)
}

// buildBranchChoiceModal - первый шаг: повторяющееся отсутствие или разовое
func buildBranchChoiceModal(sessionID string) slack.ModalViewRequest {
	options := []*slack.OptionBlockObject{
		slack.NewOptionBlockObject(answerRecurring, plainText("Yes"), nil),
		slack.NewOptionBlockObject(answerOneTime, plainText("No"), nil),
	}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      callbackBranchChoice,
		PrivateMetadata: sessionID,
		Title:           plainText("Report Absence"),
		Submit:          plainText("Next"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(blockRecurring,
					plainText("Is this a recurring absence?"), nil,
					slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, nil, actionRecurringSelect, options...)),
			},
		},
	}
}

// buildDetailModal строит второй шаг по выбранной ветке. Модалка - чистая
// функция ответа первого шага; неизвестная ветка - ошибка программиста.
func buildDetailModal(branch, sessionID string) slack.ModalViewRequest {
	switch branch {
	case models.BranchRecurring:
		return buildRecurringModal(sessionID)
	case models.BranchOneTime:
		return buildOneTimeModal(sessionID)
	}
	panic(fmt.Sprintf("unknown form branch: %q", branch))
}

func buildRecurringModal(sessionID string) slack.ModalViewRequest {
	weekdayOptions := make([]*slack.OptionBlockObject, 0, int(models.Saturday))
	for day := models.Monday; day <= models.Saturday; day++ {
		weekdayOptions = append(weekdayOptions,
			slack.NewOptionBlockObject(strconv.Itoa(int(day)), plainText(day.String()), nil))
	}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      callbackRecurring,
		PrivateMetadata: sessionID,
		Title:           plainText("Recurring Absence"),
		Submit:          plainText("Submit"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(blockStart, plainText("Start Date"), nil,
					slack.NewDatePickerBlockElement(actionStart)),
				slack.NewInputBlock(blockEnd, plainText("End Date"), nil,
					slack.NewDatePickerBlockElement(actionEnd)),
				slack.NewInputBlock(blockWeekdays, plainText("Which days of the week?"), nil,
					slack.NewOptionsMultiSelectBlockElement(slack.MultiOptTypeStatic, nil, actionWeekdays, weekdayOptions...)),
				absenceTypeBlock(),
				arrivalTimeBlock(),
				departureTimeBlock(),
				reasonBlock(blockReasonRec, actionReasonRec),
				notesBlock(blockNotesRec, actionNotesRec),
			},
		},
	}
}

func buildOneTimeModal(sessionID string) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      callbackOneTime,
		PrivateMetadata: sessionID,
		Title:           plainText("One-Time Absence"),
		Submit:          plainText("Submit"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(blockDate, plainText("Date"), nil,
					slack.NewDatePickerBlockElement(actionDate)),
				absenceTypeBlock(),
				arrivalTimeBlock(),
				departureTimeBlock(),
				reasonBlock(blockReasonOne, actionReasonOne),
				notesBlock(blockNotesOne, actionNotesOne),
			},
		},
	}
}

// Общие блоки обеих веток

func absenceTypeBlock() *slack.InputBlock {
	options := []*slack.OptionBlockObject{
		slack.NewOptionBlockObject(models.AbsenceTypeFull, plainText("Full Meeting"), nil),
		slack.NewOptionBlockObject(models.AbsenceTypePartial, plainText("Late Arrival / Early Departure"), nil),
	}
	return slack.NewInputBlock(blockAbsenceType, plainText("Absence Type"), nil,
		slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, nil, actionAbsenceType, options...))
}

func arrivalTimeBlock() *slack.InputBlock {
	picker := slack.NewTimePickerBlockElement(actionArrival)
	picker.Placeholder = plainText("Select time")
	block := slack.NewInputBlock(blockArrival, plainText("Arrival Time"), nil, picker)
	block.Optional = true
	return block
}

func departureTimeBlock() *slack.InputBlock {
	picker := slack.NewTimePickerBlockElement(actionDeparture)
	picker.Placeholder = plainText("Select time")
	block := slack.NewInputBlock(blockDeparture, plainText("Departure Time"), nil, picker)
	block.Optional = true
	return block
}

func reasonBlock(blockID, actionID string) *slack.InputBlock {
	return slack.NewInputBlock(blockID, plainText("Reason"),
		plainText("This will be kept confidential"),
		slack.NewPlainTextInputBlockElement(nil, actionID))
}

func notesBlock(blockID, actionID string) *slack.InputBlock {
	input := slack.NewPlainTextInputBlockElement(plainText("Additional notes (optional)"), actionID)
	input.Multiline = true
	block := slack.NewInputBlock(blockID, plainText("Notes"), nil, input)
	block.Optional = true
	return block
}

// buildDoneModal - финальное подтверждение
func buildDoneModal() *slack.ModalViewRequest {
	return &slack.ModalViewRequest{
		Type:  slack.VTModal,
		Title: plainText("Done"),
		Close: plainText("Close"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(plainText("Absence recorded successfully!"), nil, nil),
			},
		},
	}
}
