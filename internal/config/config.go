package config

import (
	"os"
	"strings"
	"sync"

	"absence-bot/internal/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	SlackBotToken         string
	SlackAppToken         string
	SpreadsheetID         string
	GoogleCredentialsFile string
	AppendRange           string
	SummaryRange          string
	SummaryChannelID      string
	NotifyUserID          string
	Timezone              string
	SummaryTime           string // HH:MM
	SummaryWeekdays       []models.Weekday
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Fatalf("error loading env variables: %s", err.Error())
		}

		instance.SlackBotToken = getEnv("SLACK_BOT_TOKEN", "")
		if instance.SlackBotToken == "" {
			logrus.Fatal("could not get slack bot token")
		}

		instance.SlackAppToken = getEnv("SLACK_APP_TOKEN", "")
		if instance.SlackAppToken == "" {
			logrus.Fatal("could not get slack app token")
		}

		instance.SpreadsheetID = getEnv("GOOGLE_SPREADSHEET_ID", "")
		if instance.SpreadsheetID == "" {
			logrus.Fatal("could not get spreadsheet id")
		}

		instance.GoogleCredentialsFile = getEnv("GOOGLE_CREDENTIALS_FILE", "")
		if instance.GoogleCredentialsFile == "" {
			logrus.Fatal("could not get google credentials file")
		}

		instance.SummaryChannelID = getEnv("SUMMARY_CHANNEL_ID", "")
		if instance.SummaryChannelID == "" {
			logrus.Fatal("could not get summary channel id")
		}

		// Диапазоны - жесткий контракт с раскладкой таблицы
		instance.AppendRange = getEnv("ABSENCE_APPEND_RANGE", "Absence Responses!A2:H2")
		instance.SummaryRange = getEnv("ABSENCE_SUMMARY_RANGE", "Today's Absences!A:H")

		// Пустой NOTIFY_USER_ID выключает личные уведомления
		instance.NotifyUserID = getEnv("NOTIFY_USER_ID", "")

		instance.Timezone = getEnv("TIMEZONE", "America/New_York")
		instance.SummaryTime = getEnv("SUMMARY_TIME", "08:00")
		instance.SummaryWeekdays = parseWeekdays(getEnv("SUMMARY_WEEKDAYS", "Tuesday,Thursday,Saturday"))
	})

	return instance
}

// parseWeekdays разбирает список дней недели через запятую (названия или номера 1-6)
func parseWeekdays(value string) []models.Weekday {
	var days []models.Weekday
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := models.ParseWeekday(part)
		if err != nil {
			logrus.Fatalf("invalid SUMMARY_WEEKDAYS entry %q: %s", part, err.Error())
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		logrus.Fatal("could not get summary weekdays")
	}
	return days
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
