package dto

import "time"

// TransactionRequest entrada para registrar una entrada (IN) o salida (OUT) de stock.
type TransactionRequest struct {
	InventoryID     int64      `json:"inventoryId" validate:"required"`
	TransactionType string     `json:"transactionType" validate:"required,oneof=IN OUT"`
	Quantity        int        `json:"quantity" validate:"required,min=1"`
	ProjectID       *int64     `json:"projectId"`
	ReferenceNo     string     `json:"referenceNo"`
	TransactionDate *time.Time `json:"transactionDate"`
	Notes           string     `json:"notes"`
	CreatedBy       string     `json:"createdBy"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID              int64     `json:"id"`
	InventoryID     int64     `json:"inventoryId"`
	ItemCode        string    `json:"itemCode"`
	ItemName        string    `json:"itemName"`
	TransactionType string    `json:"transactionType"`
	Quantity        int       `json:"quantity"`
	ProjectID       *int64    `json:"projectId,omitempty"`
	ProjectName     string    `json:"projectName,omitempty"`
	ReferenceNo     string    `json:"referenceNo,omitempty"`
	TransactionDate time.Time `json:"transactionDate"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
