package dto

// ItemAvailabilityDTO disponibilidad de un componente del proyecto.
type ItemAvailabilityDTO struct {
	ItemID           int64  `json:"itemId"`
	ItemCode         string `json:"itemCode"`
	ItemName         string `json:"itemName"`
	RequiredQuantity int    `json:"requiredQuantity"`
	AvailableStock   int    `json:"availableStock"`
	Shortfall        int    `json:"shortfall"`
	IsAvailable      bool   `json:"isAvailable"`
}

// ProjectAvailabilityResponse resultado de la conciliación requerimientos vs. stock.
type ProjectAvailabilityResponse struct {
	ProjectID         int64                 `json:"projectId"`
	ProjectName       string                `json:"projectName"`
	AllItemsAvailable bool                  `json:"allItemsAvailable"`
	Items             []ItemAvailabilityDTO `json:"items"`
}
