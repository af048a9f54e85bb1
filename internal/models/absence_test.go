package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowRoundTrip(t *testing.T) {
	record := AbsenceRecord{
		Name:          "Jane Doe",
		ReporterID:    "U123456",
		Date:          "2025-01-06",
		AbsenceType:   AbsenceTypePartial,
		ArrivalTime:   "10:30",
		DepartureTime: "15:00",
		Reason:        "doctor appointment",
		Notes:         "will catch up async",
	}

	row := record.Row()
	assert.Len(t, row, ColumnCount)
	assert.Equal(t, "Jane Doe", row[ColName])
	assert.Equal(t, "U123456", row[ColReporterID])
	assert.Equal(t, "2025-01-06", row[ColDate])
	assert.Equal(t, "partial", row[ColAbsenceType])

	assert.Equal(t, record, RecordFromRow(row))
}

func TestRecordFromRowShortRow(t *testing.T) {
	// Пустые хвостовые ячейки таблица не возвращает
	record := RecordFromRow([]string{"Jane Doe", "U123456", "2025-01-06", "full"})

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, AbsenceTypeFull, record.AbsenceType)
	assert.Empty(t, record.ArrivalTime)
	assert.Empty(t, record.DepartureTime)
	assert.Empty(t, record.Reason)
	assert.Empty(t, record.Notes)
}

func TestRecordFromRowEmpty(t *testing.T) {
	record := RecordFromRow(nil)
	assert.Empty(t, record.Name)
	assert.Empty(t, record.Date)
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Full Meeting Absence", AbsenceRecord{AbsenceType: AbsenceTypeFull}.TypeLabel())
	assert.Equal(t, "Late Arrival / Early Departure", AbsenceRecord{AbsenceType: AbsenceTypePartial}.TypeLabel())
}

func TestDetailedTypeLabel(t *testing.T) {
	tests := []struct {
		name     string
		record   AbsenceRecord
		expected string
	}{
		{"full ignores times", AbsenceRecord{AbsenceType: AbsenceTypeFull, ArrivalTime: "10:00"}, "Full Meeting Absence"},
		{"partial with both times", AbsenceRecord{AbsenceType: AbsenceTypePartial, ArrivalTime: "10:00", DepartureTime: "15:00"}, "Late Arrival / Early Departure"},
		{"partial arrival only", AbsenceRecord{AbsenceType: AbsenceTypePartial, ArrivalTime: "10:00"}, "Late Arrival"},
		{"partial departure only", AbsenceRecord{AbsenceType: AbsenceTypePartial, DepartureTime: "15:00"}, "Early Departure"},
		{"partial without times", AbsenceRecord{AbsenceType: AbsenceTypePartial}, "Late Arrival / Early Departure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.DetailedTypeLabel())
		})
	}
}
