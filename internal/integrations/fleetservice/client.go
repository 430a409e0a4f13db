package fleetservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом флота
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса флота
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFleet возвращает список доступных для планирования воздушных судов
func (c *Client) GetFleet(ctx context.Context) ([]Aircraft, error) {
	url := fmt.Sprintf("%s/internal/fleet/aircraft", c.baseURL)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var fleet []Aircraft
	if err := json.Unmarshal(body, &fleet); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Суда в обслуживании не планируются
	schedulable := make([]Aircraft, 0, len(fleet))
	for _, a := range fleet {
		if a.Available {
			schedulable = append(schedulable, a)
		}
	}

	return schedulable, nil
}

// GetAircraft возвращает воздушное судно по ID
func (c *Client) GetAircraft(ctx context.Context, aircraftID int64) (*Aircraft, error) {
	url := fmt.Sprintf("%s/internal/fleet/aircraft/%d", c.baseURL, aircraftID)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var aircraft Aircraft
	if err := json.Unmarshal(body, &aircraft); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &aircraft, nil
}

// GetFleetWithGracefulDegradation возвращает флот с graceful degradation.
// При недоступности сервиса возвращает ErrServiceDegraded - сетка
// рендерится пустой (состояние загрузки), вместо ошибки пользователю.
func (c *Client) GetFleetWithGracefulDegradation(ctx context.Context) ([]Aircraft, error) {
	fleet, err := c.GetFleet(ctx)
	if err != nil {
		c.log.Error("FleetService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return fleet, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Корреляционный ID для сквозной трассировки запросов между сервисами
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAircraftNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrInvalidResponse, err)
	}

	return body, nil
}
