package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
)

// Client клиент для работы с NotifyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppointmentCreated отправляет уведомление о создании записи
// Ошибки доставки не критичны: запись уже сохранена
func (c *Client) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	return c.sendEvent(ctx, EventAppointmentCreated, appt)
}

// AppointmentCancelled отправляет уведомление об отмене записи
func (c *Client) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return c.sendEvent(ctx, EventAppointmentCancelled, appt)
}

func (c *Client) sendEvent(ctx context.Context, event string, appt *domain.Appointment) error {
	c.log.Info("Sending %s notification for appointment=%s", event, appt.ID)

	payload := AppointmentEvent{
		Event:         event,
		AppointmentID: appt.ID,
		ClientID:      appt.ClientID,
		ServiceName:   appt.ServiceName,
		StartsAt:      appt.StartsAt,
		EndsAt:        appt.EndsAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications/events", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Недоступность сервиса уведомлений не должна ломать основной сценарий
		c.log.Error("NotifyService unavailable, applying graceful degradation for appointment=%s: %v", appt.ID, err)
		return fmt.Errorf("%w: appointment=%s, error=%v", ErrServiceDegraded, appt.ID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		c.log.Info("Notification %s delivered for appointment=%s", event, appt.ID)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("NotifyService returned status %d for appointment=%s: %s", resp.StatusCode, appt.ID, string(respBody))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
