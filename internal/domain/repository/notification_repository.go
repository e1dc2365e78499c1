package repository

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// NotificationRepository persistencia de notificaciones.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	List(ctx context.Context) ([]*entity.Notification, error)
	ListUnread(ctx context.Context) ([]*entity.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	// HasUnread indica si ya existe una notificación sin leer del tipo para el mismo recurso.
	HasUnread(ctx context.Context, notificationType string, relatedID int64) (bool, error)
}
