package slackclient

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Client struct {
	API       *slack.Client
	Socket    *socketmode.Client
	BotUserID string
}

func NewClient(botToken, appToken string) (*Client, error) {
	api := slack.New(
		botToken,
		slack.OptionAppLevelToken(appToken),
	)

	// Проверяем токен сразу, заодно узнаем свой user id
	authTest, err := api.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("slack auth test failed: %w", err)
	}

	return &Client{
		API:       api,
		Socket:    socketmode.New(api),
		BotUserID: authTest.UserID,
	}, nil
}
