package googleauth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
)

const sheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// TokenSource обменивает ключ сервисного аккаунта на bearer-токен перед
// каждым обращением к Sheets API. Токены между вызовами не кешируются.
type TokenSource struct {
	credentials []byte
}

func NewTokenSource(credentialsFile string) (*TokenSource, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Валидируем ключ на старте, чтобы не падать на первой отправке формы
	if _, err := google.JWTConfigFromJSON(data, sheetsScope); err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	return &TokenSource{credentials: data}, nil
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	conf, err := google.JWTConfigFromJSON(s.credentials, sheetsScope)
	if err != nil {
		return "", fmt.Errorf("invalid service account credentials: %w", err)
	}

	token, err := conf.TokenSource(ctx).Token()
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return token.AccessToken, nil
}
