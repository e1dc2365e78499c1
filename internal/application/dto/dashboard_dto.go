package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del inventario, proyectos en curso y movimientos del mes en curso.
type DashboardSummaryDTO struct {
	TotalItems         int             `json:"totalItems"`
	LowStockItems      int             `json:"lowStockItems"`
	InventoryValue     decimal.Decimal `json:"inventoryValue"`
	ProjectsInProgress int             `json:"projectsInProgress"`
	UnreadAlerts       int64           `json:"unreadAlerts"`

	// Movimientos del día actual (00:00 – 23:59)
	TodayIn  int `json:"todayIn"`
	TodayOut int `json:"todayOut"`

	// Movimientos del mes en curso (día 1 – hoy)
	MonthlyIn  int `json:"monthlyIn"`
	MonthlyOut int `json:"monthlyOut"`

	// Ítems con más unidades despachadas en el mes (mayor a menor)
	TopConsumed []TopConsumedDTO `json:"topConsumed"`

	DateLabel string `json:"dateLabel"` // ej: "Febrero 2026"
}

// TopConsumedDTO ítem del widget de consumo del dashboard.
type TopConsumedDTO struct {
	ItemID      int64  `json:"itemId"`
	ItemCode    string `json:"itemCode"`
	ItemName    string `json:"itemName"`
	QuantityOut int    `json:"quantityOut"`
}
