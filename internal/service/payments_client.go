package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/starstore/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

const defaultPaymentsBaseURL = "https://api.telegram.org"

// TelegramPaymentsClient реализует domain.PaymentsClient поверх Bot API.
// Ссылки на оплату создаются в валюте XTR (Telegram Stars).
type TelegramPaymentsClient struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
}

// NewPaymentsClient создает новый TelegramPaymentsClient
func NewPaymentsClient(token string) *TelegramPaymentsClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	return &TelegramPaymentsClient{
		baseURL:    defaultPaymentsBaseURL,
		token:      token,
		httpClient: client,
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *TelegramPaymentsClient) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("payments client: failed to marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payments client: failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payments client: failed to execute %s request: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("payments client: failed to decode %s response: %w", method, err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("payments client: %s rejected: %s", method, apiResp.Description)
	}

	return apiResp.Result, nil
}

// CreateInvoiceLink создает платежную ссылку для заказа на продажу звезд
func (c *TelegramPaymentsClient) CreateInvoiceLink(ctx context.Context, chatID int64, orderID string, stars int) (string, error) {
	payload := map[string]any{
		"chat_id":     chatID,
		"title":       fmt.Sprintf("Purchase of %d Telegram Stars", stars),
		"description": fmt.Sprintf("Purchase of %d Telegram Stars", stars),
		"payload":     orderID,
		"currency":    "XTR",
		"prices": []map[string]any{
			{"label": fmt.Sprintf("%d Telegram Stars", stars), "amount": stars},
		},
	}

	result, err := c.call(ctx, "createInvoiceLink", payload)
	if err != nil {
		return "", err
	}

	var link string
	if err := json.Unmarshal(result, &link); err != nil {
		return "", fmt.Errorf("payments client: failed to decode invoice link: %w", err)
	}

	return link, nil
}

// RefundStars возвращает звезды пользователю. Неуспех этого вызова —
// основание не одобрять возврат.
func (c *TelegramPaymentsClient) RefundStars(ctx context.Context, chatID int64, stars int) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    fmt.Sprintf("You have received %d Telegram Stars as a refund.", stars),
	}

	if _, err := c.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRefundFailed, err)
	}

	return nil
}
