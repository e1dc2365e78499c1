package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un ítem de inventario identificado por su código.
// CurrentStock y MinStock nunca son negativos; MinStock es el umbral de reposición.
type Item struct {
	ID           int64
	Code         string // único
	Name         string
	Category     string
	Unit         string // EA, M, KG...
	CurrentStock int
	MinStock     int
	UnitPrice    decimal.Decimal
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Límites de las columnas de inventory: VARCHAR(n), INTEGER y NUMERIC(15,2).
const (
	MaxItemCodeLen     = 50
	MaxItemNameLen     = 200
	MaxItemCategoryLen = 100
	MaxItemUnitLen     = 20
	MaxItemLocationLen = 100
	MaxStock           = math.MaxInt32
)

// MaxUnitPrice cota exclusiva de unit_price.
var MaxUnitPrice = decimal.New(1, 13)

// IsLowStock indica si el stock actual está por debajo del mínimo.
func (i *Item) IsLowStock() bool {
	return i.CurrentStock < i.MinStock
}

// StockValue valor del stock a precio unitario.
func (i *Item) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
