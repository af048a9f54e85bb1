package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"absence-bot/internal/config"
	"absence-bot/internal/handler"
	"absence-bot/internal/service"
	"absence-bot/pkg/googleauth"
	"absence-bot/pkg/sheets"
	"absence-bot/pkg/slackclient"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Ключ сервисного аккаунта Google: токен запрашивается перед каждым
	// обращением к таблице
	tokens, err := googleauth.NewTokenSource(cfg.GoogleCredentialsFile)
	if err != nil {
		logrus.Fatal("Failed to load Google credentials:", err)
	}

	sheetsClient := sheets.NewClient(tokens, cfg.SpreadsheetID)

	// Создаем клиент Slack
	client, err := slackclient.NewClient(cfg.SlackBotToken, cfg.SlackAppToken)
	if err != nil {
		logrus.Fatal("Failed to create Slack client:", err)
	}

	logrus.Infof("Authorized as bot user %s", client.BotUserID)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Fatal("Failed to load timezone:", err)
	}

	// Создаем сервисы
	absenceService := service.NewAbsenceService(sheetsClient, client.API, cfg.AppendRange, cfg.NotifyUserID)
	summaryService := service.NewSummaryService(sheetsClient, cfg.SummaryRange, location)

	// Создаем обработчик с конфигом
	botHandler := handler.NewHandler(client, absenceService, summaryService, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем обработку событий и расписание сводки
	go botHandler.HandleEvents()
	go botHandler.RunScheduler(ctx)

	go func() {
		if err := client.Socket.RunContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logrus.Fatal("Socket mode connection failed:", err)
		}
	}()

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	cancel()
	logrus.Info("Bot stopped gracefully")
}
