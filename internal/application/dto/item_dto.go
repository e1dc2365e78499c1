package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para crear o actualizar un ítem de inventario.
type ItemRequest struct {
	ItemCode     string           `json:"itemCode" validate:"required,max=50"`
	ItemName     string           `json:"itemName" validate:"required,max=200"`
	Category     string           `json:"category"`
	Unit         string           `json:"unit" validate:"required,max=20"`
	CurrentStock *int             `json:"currentStock" validate:"required,min=0"`
	MinStock     int              `json:"minStock" validate:"min=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Location     string           `json:"location"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID           int64            `json:"id"`
	ItemCode     string           `json:"itemCode"`
	ItemName     string           `json:"itemName"`
	Category     string           `json:"category,omitempty"`
	Unit         string           `json:"unit"`
	CurrentStock int              `json:"currentStock"`
	MinStock     int              `json:"minStock"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	Location     string           `json:"location,omitempty"`
	LowStock     bool             `json:"lowStock"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ReplenishmentSuggestion sugerencia de pedido para un ítem con stock bajo.
type ReplenishmentSuggestion struct {
	ItemID            int64           `json:"itemId"`
	ItemCode          string          `json:"itemCode"`
	ItemName          string          `json:"itemName"`
	CurrentStock      int             `json:"currentStock"`
	MinStock          int             `json:"minStock"`
	IdealStock        int             `json:"idealStock"`
	SuggestedOrderQty int             `json:"suggestedOrderQty"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	EstimatedCost     decimal.Decimal `json:"estimatedCost"`
	Priority          int             `json:"priority"`
}
