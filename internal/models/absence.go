// internal/models/absence.go
package models

const (
	AbsenceTypeFull    = "full"
	AbsenceTypePartial = "partial"
)

// DateLayout - формат дат в таблице и в datepicker'ах Slack (ISO 8601)
const DateLayout = "2006-01-02"

// Позиции колонок листа. Единственный источник правды о раскладке строки:
// при изменении структуры таблицы правится только этот блок.
const (
	ColName = iota
	ColReporterID
	ColDate
	ColAbsenceType
	ColArrivalTime
	ColDepartureTime
	ColReason
	ColNotes
	ColumnCount
)

type AbsenceRecord struct {
	Name          string `json:"name"`
	ReporterID    string `json:"reporter_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	AbsenceType   string `json:"absence_type"` // full, partial
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	Reason        string `json:"reason"`
	Notes         string `json:"notes,omitempty"`
}

// Row собирает строку для записи в таблицу в порядке колонок
func (r AbsenceRecord) Row() []string {
	row := make([]string, ColumnCount)
	row[ColName] = r.Name
	row[ColReporterID] = r.ReporterID
	row[ColDate] = r.Date
	row[ColAbsenceType] = r.AbsenceType
	row[ColArrivalTime] = r.ArrivalTime
	row[ColDepartureTime] = r.DepartureTime
	row[ColReason] = r.Reason
	row[ColNotes] = r.Notes
	return row
}

// RecordFromRow разбирает строку из таблицы. Короткие строки дополняются
// пустыми ячейками: отсутствующие необязательные поля - не ошибка.
func RecordFromRow(row []string) AbsenceRecord {
	if len(row) < ColumnCount {
		padded := make([]string, ColumnCount)
		copy(padded, row)
		row = padded
	}
	return AbsenceRecord{
		Name:          row[ColName],
		ReporterID:    row[ColReporterID],
		Date:          row[ColDate],
		AbsenceType:   row[ColAbsenceType],
		ArrivalTime:   row[ColArrivalTime],
		DepartureTime: row[ColDepartureTime],
		Reason:        row[ColReason],
		Notes:         row[ColNotes],
	}
}

// TypeLabel - подпись типа отсутствия для сводки
func (r AbsenceRecord) TypeLabel() string {
	if r.AbsenceType == AbsenceTypeFull {
		return "Full Meeting Absence"
	}
	return "Late Arrival / Early Departure"
}

// DetailedTypeLabel уточняет подпись по заполненным полям времени
func (r AbsenceRecord) DetailedTypeLabel() string {
	if r.AbsenceType == AbsenceTypeFull {
		return "Full Meeting Absence"
	}
	switch {
	case r.ArrivalTime != "" && r.DepartureTime != "":
		return "Late Arrival / Early Departure"
	case r.ArrivalTime != "":
		return "Late Arrival"
	case r.DepartureTime != "":
		return "Early Departure"
	}
	return "Late Arrival / Early Departure"
}
