package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"isRead"`
	RelatedID *int64    `json:"relatedId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnreadCountResponse contador de notificaciones sin leer.
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}
