package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// NotificationUseCase consulta y genera notificaciones.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List todas las notificaciones, más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// ListUnread notificaciones sin leer.
func (uc *NotificationUseCase) ListUnread(ctx context.Context) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListUnread(ctx)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// UnreadCount cantidad de notificaciones sin leer.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context) (int64, error) {
	return uc.repo.CountUnread(ctx)
}

// MarkAsRead marca una notificación como leída y la devuelve.
func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, id int64) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if !n.IsRead {
		if err := uc.repo.MarkAsRead(ctx, id); err != nil {
			return nil, err
		}
		n.IsRead = true
	}
	out := dto.ToNotificationResponse(n)
	return &out, nil
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// NotifyLowStock crea una alerta LOW_STOCK salvo que ya exista una sin leer para el mismo ítem.
func (uc *NotificationUseCase) NotifyLowStock(ctx context.Context, item *entity.Item) error {
	exists, err := uc.repo.HasUnread(ctx, entity.NotificationLowStock, item.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	id := item.ID
	return uc.repo.Create(ctx, &entity.Notification{
		Type:  entity.NotificationLowStock,
		Title: "Alerta de stock bajo",
		Message: fmt.Sprintf("[%s] %s está por debajo del mínimo (%d). Stock actual: %d %s",
			item.Code, item.Name, item.MinStock, item.CurrentStock, item.Unit),
		RelatedID: &id,
		CreatedAt: time.Now(),
	})
}

// NotifyProjectShortage crea una alerta PROJECT_SHORTAGE con el detalle de los faltantes.
// No hace nada si la lista no tiene ítems faltantes.
func (uc *NotificationUseCase) NotifyProjectShortage(ctx context.Context, projectID int64, projectName string, items []availability.ItemAvailability) error {
	var b strings.Builder
	missing := 0
	fmt.Fprintf(&b, "Faltan componentes para el proyecto [%s]:\n", projectName)
	for _, it := range items {
		if it.IsAvailable {
			continue
		}
		missing++
		fmt.Fprintf(&b, "- [%s] %s: requerido %d, disponible %d (faltan %d)\n",
			it.ItemCode, it.ItemName, it.RequiredQuantity, it.AvailableStock, it.Shortfall)
	}
	if missing == 0 {
		return nil
	}
	id := projectID
	return uc.repo.Create(ctx, &entity.Notification{
		Type:      entity.NotificationProjectShortage,
		Title:     "Faltante de componentes en proyecto",
		Message:   b.String(),
		RelatedID: &id,
		CreatedAt: time.Now(),
	})
}

func toNotificationResponses(list []*entity.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.ToNotificationResponse(n))
	}
	return out
}
