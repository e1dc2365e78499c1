package entity

import "time"

// ProjectItem componente requerido por un proyecto.
// Item se carga por JOIN en las lecturas; puede ser nil en escrituras.
type ProjectItem struct {
	ID                int64
	ProjectID         int64
	ItemID            int64
	RequiredQuantity  int
	AllocatedQuantity int
	Notes             string
	CreatedAt         time.Time
	Item              *Item
}
