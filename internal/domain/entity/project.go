package entity

import "time"

// Estados de proyecto.
const (
	ProjectStatusPending    = "PENDING"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusCompleted  = "COMPLETED"
	ProjectStatusCancelled  = "CANCELLED"
)

// ProjectStatuses en el orden en que se reportan.
var ProjectStatuses = []string{
	ProjectStatusPending,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

// IsValidProjectStatus valida el estado recibido.
func IsValidProjectStatus(s string) bool {
	for _, st := range ProjectStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Límites de las columnas de projects.
const (
	MaxProjectCodeLen   = 50
	MaxProjectNameLen   = 200
	MaxProjectClientLen = 200
)

// Project proyecto que consume componentes del inventario.
type Project struct {
	ID          int64
	Code        string // único
	Name        string
	Client      string
	Status      string
	StartDate   *time.Time // solo fecha
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
