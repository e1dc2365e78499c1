// Package availability concilia los requerimientos de un proyecto contra el stock vigente.
//
// Reconcile es una función pura: no modifica sus entradas ni guarda estado. El resultado
// refleja el instante en que se leyó el inventario y queda obsoleto con el siguiente movimiento.
package availability

import "github.com/jhoicas/inventario-proyectos/internal/domain"

// Requirement cantidad de un ítem que necesita el proyecto.
type Requirement struct {
	ItemID           int64
	RequiredQuantity int
}

// StockLevel stock vigente de un ítem (snapshot de lectura).
type StockLevel struct {
	ItemID       int64
	ItemCode     string
	ItemName     string
	CurrentStock int
}

// StockLookup índice itemID → stock.
type StockLookup map[int64]StockLevel

// NewStockLookup arma el índice a partir del listado de inventario.
func NewStockLookup(levels []StockLevel) StockLookup {
	lookup := make(StockLookup, len(levels))
	for _, l := range levels {
		lookup[l.ItemID] = l
	}
	return lookup
}

// ItemAvailability resultado por requerimiento.
type ItemAvailability struct {
	ItemID           int64
	ItemCode         string
	ItemName         string
	RequiredQuantity int
	AvailableStock   int
	Shortfall        int
	IsAvailable      bool
}

// Result resultado agregado de la conciliación. Items conserva el orden de los requerimientos.
type Result struct {
	AllItemsAvailable bool
	Items             []ItemAvailability
}

// Reconcile compara cada requerimiento con el stock vigente.
// Si un requerimiento apunta a un ítem ausente del lookup devuelve *domain.UnknownItemError
// y ningún resultado parcial.
func Reconcile(requirements []Requirement, stock StockLookup) (*Result, error) {
	items := make([]ItemAvailability, 0, len(requirements))
	all := true
	for _, req := range requirements {
		level, ok := stock[req.ItemID]
		if !ok {
			return nil, &domain.UnknownItemError{ItemID: req.ItemID}
		}
		shortfall := req.RequiredQuantity - level.CurrentStock
		if shortfall < 0 {
			shortfall = 0
		}
		available := shortfall == 0
		if !available {
			all = false
		}
		items = append(items, ItemAvailability{
			ItemID:           req.ItemID,
			ItemCode:         level.ItemCode,
			ItemName:         level.ItemName,
			RequiredQuantity: req.RequiredQuantity,
			AvailableStock:   level.CurrentStock,
			Shortfall:        shortfall,
			IsAvailable:      available,
		})
	}
	return &Result{AllItemsAvailable: all, Items: items}, nil
}

// Shortages devuelve solo los ítems con faltante, en el mismo orden.
func (r *Result) Shortages() []ItemAvailability {
	var out []ItemAvailability
	for _, it := range r.Items {
		if !it.IsAvailable {
			out = append(out, it)
		}
	}
	return out
}
