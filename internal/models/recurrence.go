// internal/models/recurrence.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday - канонический номер дня недели: 1=понедельник .. 6=суббота.
// Воскресенье в этой доменной области не выбирается.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// WeekdayOf переводит time.Weekday в канонический номер.
// У Go воскресенье = 0, здесь оно становится 7 и никогда не попадает
// в набор 1..6 - это соответствие нужно сохранять точно.
func WeekdayOf(t time.Time) Weekday {
	day := int(t.Weekday())
	if day == 0 {
		return Weekday(7)
	}
	return Weekday(day)
}

// ParseWeekday разбирает внешнее представление дня недели (номер или
// английское название). Единственное место, где встречаются оба варианта
// кодировки - дальше по коду живет только Weekday.
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "monday", "mon":
		return Monday, nil
	case "2", "tuesday", "tue":
		return Tuesday, nil
	case "3", "wednesday", "wed":
		return Wednesday, nil
	case "4", "thursday", "thu":
		return Thursday, nil
	case "5", "friday", "fri":
		return Friday, nil
	case "6", "saturday", "sat":
		return Saturday, nil
	case "7", "sunday", "sun":
		return 0, fmt.Errorf("sunday is not a selectable absence day")
	}
	return 0, fmt.Errorf("unknown weekday: %q", s)
}

// RecurrenceSpec - правило разворачивания одной отправки формы в набор дат.
// Живет только на время разворачивания.
type RecurrenceSpec struct {
	Start    time.Time
	End      time.Time
	Weekdays []Weekday
}

// Expand перебирает даты от начала до конца включительно и оставляет те,
// чей день недели входит в выбранный набор. Результат отсортирован по
// возрастанию, дедупликации нет. При start > end список пуст.
func (s RecurrenceSpec) Expand() []time.Time {
	selected := make(map[Weekday]bool, len(s.Weekdays))
	for _, d := range s.Weekdays {
		selected[d] = true
	}

	var dates []time.Time
	for date := s.Start; !date.After(s.End); date = date.AddDate(0, 0, 1) {
		if selected[WeekdayOf(date)] {
			dates = append(dates, date)
		}
	}
	return dates
}
