package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource выдает bearer-токен для Sheets API. Токен запрашивается
// непосредственно перед каждым вызовом и между вызовами не кешируется.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client - тонкий адаптер к Google Sheets REST API: одна запись, одно
// чтение, без повторов и без пагинации.
type Client struct {
	httpClient    *http.Client
	tokens        TokenSource
	spreadsheetID string
	baseURL       string
}

func NewClient(tokens TokenSource, spreadsheetID string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		tokens:        tokens,
		spreadsheetID: spreadsheetID,
		baseURL:       "https://sheets.googleapis.com/v4/spreadsheets",
	}
}

type valueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values,omitempty"`
}

// AppendRows дописывает строки в именованный диапазон одним запросом.
// valueInputOption=USER_ENTERED: приведение типов (даты и т.п.) делает сам сервис.
func (c *Client) AppendRows(ctx context.Context, rangeName string, rows [][]string) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect Google auth token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeName))

	body, err := json.Marshal(valueRange{
		Range:          rangeName,
		MajorDimension: "ROWS",
		Values:         rows,
	})
	if err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("append request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}
	return nil
}

// ReadRange читает именованный диапазон. Значения приходят уже
// отформатированными строками (valueRenderOption=FORMATTED_VALUE).
func (c *Client) ReadRange(ctx context.Context, rangeName string) ([][]string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect Google auth token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s?valueRenderOption=FORMATTED_VALUE",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("read request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var result valueRange
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Values, nil
}

// apiError собирает ошибку из статуса и тела ответа - текст сервиса
// отдается наверх как есть
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Errorf("sheets API error: %s", resp.Status)
	}
	return fmt.Errorf("sheets API error: %s: %s", resp.Status, text)
}
