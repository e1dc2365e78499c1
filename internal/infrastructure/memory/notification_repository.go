package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// NotificationRepository notificaciones en memoria.
type NotificationRepository struct {
	s *Store
}

// NewNotificationRepository construye el repositorio sobre el almacén.
func NewNotificationRepository(s *Store) *NotificationRepository {
	return &NotificationRepository{s: s}
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.ID = r.s.nextID("notifications")
	r.s.notifications[n.ID] = *n
	return nil
}

func (r *NotificationRepository) GetByID(_ context.Context, id int64) (*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *NotificationRepository) filter(keep func(entity.Notification) bool) []*entity.Notification {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Notification, 0)
	for _, n := range r.s.notifications {
		if keep(n) {
			cp := n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *NotificationRepository) List(_ context.Context) ([]*entity.Notification, error) {
	return r.filter(func(entity.Notification) bool { return true }), nil
}

func (r *NotificationRepository) ListUnread(_ context.Context) ([]*entity.Notification, error) {
	return r.filter(func(n entity.Notification) bool { return !n.IsRead }), nil
}

func (r *NotificationRepository) CountUnread(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, n := range r.s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.IsRead = true
	r.s.notifications[id] = n
	return nil
}

func (r *NotificationRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.notifications, id)
	return nil
}

func (r *NotificationRepository) HasUnread(_ context.Context, notificationType string, relatedID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, n := range r.s.notifications {
		if !n.IsRead && n.Type == notificationType && n.RelatedID != nil && *n.RelatedID == relatedID {
			return true, nil
		}
	}
	return false, nil
}
