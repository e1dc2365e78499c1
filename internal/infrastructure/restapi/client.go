// Package restapi es el cliente HTTP de la API de inventario. Implementa la fuente de
// disponibilidad y el contador de notificaciones para consumidores remotos (CLI).
package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/notification"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

var (
	_ appavailability.Source    = (*Client)(nil)
	_ notification.UnreadSource = (*Client)(nil)
)

const maxBody = 4 << 20

// APIError respuesta no 2xx de la API. Con 404 envuelve domain.ErrNotFound.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Unwrap traduce los estados conocidos a errores de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

// Client cliente de la API REST. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final, p. ej. http://localhost:8080.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: GET %s cancelado: %w", path, ctx.Err())
		}
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("api: leer respuesta %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var er dto.ErrorResponse
		if json.Unmarshal(body, &er) == nil && er.Message != "" {
			apiErr.Code, apiErr.Message = er.Code, er.Message
		}
		return apiErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decodificar %s: %w", path, err)
	}
	return nil
}

// GetProject GET /api/projects/{id}.
func (c *Client) GetProject(ctx context.Context, projectID int64) (*entity.Project, error) {
	var p dto.ProjectResponse
	if err := c.get(ctx, "/api/projects/"+strconv.FormatInt(projectID, 10), &p); err != nil {
		return nil, err
	}
	return &entity.Project{ID: p.ID, Code: p.ProjectCode, Name: p.ProjectName, Client: p.Client, Status: p.Status}, nil
}

// ListRequirements GET /api/projects/{id}/items. Si la respuesta no trae itemId se usa inventory.id.
func (c *Client) ListRequirements(ctx context.Context, projectID int64) ([]availability.Requirement, error) {
	var items []dto.ProjectItemResponse
	if err := c.get(ctx, "/api/projects/"+strconv.FormatInt(projectID, 10)+"/items", &items); err != nil {
		return nil, err
	}
	out := make([]availability.Requirement, 0, len(items))
	for _, it := range items {
		id := it.ItemID
		if id == 0 {
			id = it.Inventory.ID
		}
		out = append(out, availability.Requirement{ItemID: id, RequiredQuantity: it.RequiredQuantity})
	}
	return out, nil
}

// ListStock GET /api/inventory.
func (c *Client) ListStock(ctx context.Context) ([]availability.StockLevel, error) {
	var items []dto.ItemResponse
	if err := c.get(ctx, "/api/inventory", &items); err != nil {
		return nil, err
	}
	out := make([]availability.StockLevel, 0, len(items))
	for _, it := range items {
		out = append(out, availability.StockLevel{
			ItemID:       it.ID,
			ItemCode:     it.ItemCode,
			ItemName:     it.ItemName,
			CurrentStock: it.CurrentStock,
		})
	}
	return out, nil
}

// UnreadCount GET /api/notifications/unread-count. Acepta {"unreadCount": n} o un número suelto.
func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/notifications/unread-count", &raw); err != nil {
		return 0, err
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var wrapped dto.UnreadCountResponse
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return 0, fmt.Errorf("api: decodificar unread-count: %w", err)
	}
	return wrapped.UnreadCount, nil
}

// ListUnread GET /api/notifications/unread.
func (c *Client) ListUnread(ctx context.Context) ([]dto.NotificationResponse, error) {
	var out []dto.NotificationResponse
	if err := c.get(ctx, "/api/notifications/unread", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Availability GET /api/projects/{id}/availability (cálculo del lado del servidor).
func (c *Client) Availability(ctx context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error) {
	var out dto.ProjectAvailabilityResponse
	if err := c.get(ctx, "/api/projects/"+strconv.FormatInt(projectID, 10)+"/availability", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchInventory GET /api/inventory/search?keyword=.
func (c *Client) SearchInventory(ctx context.Context, keyword string) ([]dto.ItemResponse, error) {
	var out []dto.ItemResponse
	if err := c.get(ctx, "/api/inventory/search?keyword="+url.QueryEscape(keyword), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsNotFound atajo para errors.Is(err, domain.ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
