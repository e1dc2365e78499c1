package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock        = "LOW_STOCK"
	NotificationProjectShortage = "PROJECT_SHORTAGE"
)

// Notification aviso para el usuario. RelatedID apunta al ítem (LOW_STOCK) o al proyecto (PROJECT_SHORTAGE).
type Notification struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	IsRead    bool
	RelatedID *int64
	CreatedAt time.Time
}
