// internal/service/summary_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"absence-bot/internal/models"

	"github.com/sirupsen/logrus"
)

// SheetsReader - чтение диапазона из таблицы
type SheetsReader interface {
	ReadRange(ctx context.Context, rangeName string) ([][]string, error)
}

// SummaryView - проекция сегодняшних отсутствий для рендеринга.
// Никогда не хранится, строится заново на каждый запуск сводки.
type SummaryView struct {
	Date    string
	Records []models.AbsenceRecord
}

type SummaryService struct {
	sheets       SheetsReader
	summaryRange string
	location     *time.Location
	logger       *logrus.Logger
}

func NewSummaryService(sheets SheetsReader, summaryRange string, location *time.Location) *SummaryService {
	return &SummaryService{
		sheets:       sheets,
		summaryRange: summaryRange,
		location:     location,
		logger:       logrus.New(),
	}
}

// TodaySummary читает отфильтрованный диапазон и собирает сводку.
// Первая строка листа - всегда заголовок, пропускается без анализа содержимого.
func (s *SummaryService) TodaySummary(ctx context.Context) (*SummaryView, error) {
	rows, err := s.sheets.ReadRange(ctx, s.summaryRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's absences: %w", err)
	}

	if len(rows) > 0 {
		rows = rows[1:]
	}

	records := make([]models.AbsenceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.RecordFromRow(row))
	}

	s.logger.Infof("Found %d absences for today", len(records))

	return &SummaryView{
		Date:    time.Now().In(s.location).Format("1/2/2006"),
		Records: records,
	}, nil
}
