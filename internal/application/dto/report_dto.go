package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatusReport reporte de estado del inventario.
type InventoryStatusReport struct {
	TotalItems    int             `json:"totalItems"`
	LowStockItems int             `json:"lowStockItems"`
	TotalStock    int             `json:"totalStock"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	InventoryList []ItemResponse  `json:"inventoryList"`
	LowStockList  []ItemResponse  `json:"lowStockList"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// ProjectSummaryReport resumen de proyectos por estado. StatusCounts incluye todos los estados.
type ProjectSummaryReport struct {
	TotalProjects int               `json:"totalProjects"`
	StatusCounts  map[string]int    `json:"statusCounts"`
	Projects      []ProjectResponse `json:"projects"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

// TransactionHistoryReport historial de entradas/salidas con totales.
type TransactionHistoryReport struct {
	TotalTransactions int                   `json:"totalTransactions"`
	InTransactions    int                   `json:"inTransactions"`
	OutTransactions   int                   `json:"outTransactions"`
	TotalInQuantity   int                   `json:"totalInQuantity"`
	TotalOutQuantity  int                   `json:"totalOutQuantity"`
	Transactions      []TransactionResponse `json:"transactions"`
	GeneratedAt       time.Time             `json:"generatedAt"`
}
