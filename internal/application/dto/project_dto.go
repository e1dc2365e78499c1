package dto

import "time"

// ProjectRequest entrada para crear o actualizar un proyecto. Fechas en formato YYYY-MM-DD.
type ProjectRequest struct {
	ProjectCode string  `json:"projectCode" validate:"required,max=50"`
	ProjectName string  `json:"projectName" validate:"required,max=200"`
	Client      string  `json:"client"`
	Status      string  `json:"status" validate:"required"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID          int64     `json:"id"`
	ProjectCode string    `json:"projectCode"`
	ProjectName string    `json:"projectName"`
	Client      string    `json:"client,omitempty"`
	Status      string    `json:"status"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectItemRequest alta de un componente requerido.
type ProjectItemRequest struct {
	InventoryID       int64  `json:"inventoryId" validate:"required"`
	RequiredQuantity  int    `json:"requiredQuantity" validate:"required,min=1"`
	AllocatedQuantity int    `json:"allocatedQuantity" validate:"min=0"`
	Notes             string `json:"notes"`
}

// ProjectItemResponse componente requerido con el ítem embebido.
type ProjectItemResponse struct {
	ID                int64        `json:"id"`
	ProjectID         int64        `json:"projectId"`
	ItemID            int64        `json:"itemId"`
	RequiredQuantity  int          `json:"requiredQuantity"`
	AllocatedQuantity int          `json:"allocatedQuantity"`
	Notes             string       `json:"notes,omitempty"`
	Inventory         ItemResponse `json:"inventory"`
	CreatedAt         time.Time    `json:"createdAt"`
}
