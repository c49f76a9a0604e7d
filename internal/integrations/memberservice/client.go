package memberservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом участников студии
// (тренеры и клиенты - внешний коллаборатор, авторизация живёт там же)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MemberService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTrainer получает тренера по ID
func (c *Client) GetTrainer(ctx context.Context, trainerID string) (*Trainer, error) {
	var trainer Trainer
	url := fmt.Sprintf("%s/internal/trainers/%s", c.baseURL, trainerID)

	if err := c.get(ctx, url, ErrTrainerNotFound, &trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}

// GetClient получает клиента студии по ID
func (c *Client) GetClient(ctx context.Context, clientID string) (*StudioClient, error) {
	var client StudioClient
	url := fmt.Sprintf("%s/internal/clients/%s", c.baseURL, clientID)

	if err := c.get(ctx, url, ErrClientNotFound, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (c *Client) get(ctx context.Context, url string, notFound error, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
