package dto

import (
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// ToItemResponse convierte la entidad a DTO. UnitPrice se omite si es cero.
func ToItemResponse(i *entity.Item) ItemResponse {
	out := ItemResponse{
		ID:           i.ID,
		ItemCode:     i.Code,
		ItemName:     i.Name,
		Category:     i.Category,
		Unit:         i.Unit,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		Location:     i.Location,
		LowStock:     i.IsLowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if !i.UnitPrice.IsZero() {
		p := i.UnitPrice
		out.UnitPrice = &p
	}
	return out
}

// ToItemResponses convierte un listado; nunca devuelve nil.
func ToItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemResponse(i))
	}
	return out
}

// ToProjectResponse convierte la entidad a DTO.
func ToProjectResponse(p *entity.Project) ProjectResponse {
	out := ProjectResponse{
		ID:          p.ID,
		ProjectCode: p.Code,
		ProjectName: p.Name,
		Client:      p.Client,
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.StartDate != nil {
		s := p.StartDate.Format(DateLayout)
		out.StartDate = &s
	}
	if p.EndDate != nil {
		s := p.EndDate.Format(DateLayout)
		out.EndDate = &s
	}
	return out
}

// ToProjectResponses convierte un listado; nunca devuelve nil.
func ToProjectResponses(projects []*entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectResponse(p))
	}
	return out
}

// ToProjectItemResponse convierte la entidad (con Item cargado) a DTO.
func ToProjectItemResponse(pi *entity.ProjectItem) ProjectItemResponse {
	out := ProjectItemResponse{
		ID:                pi.ID,
		ProjectID:         pi.ProjectID,
		ItemID:            pi.ItemID,
		RequiredQuantity:  pi.RequiredQuantity,
		AllocatedQuantity: pi.AllocatedQuantity,
		Notes:             pi.Notes,
		CreatedAt:         pi.CreatedAt,
	}
	if pi.Item != nil {
		out.Inventory = ToItemResponse(pi.Item)
	}
	return out
}

// ToTransactionResponse convierte la entidad a DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		InventoryID:     t.ItemID,
		ItemCode:        t.ItemCode,
		ItemName:        t.ItemName,
		TransactionType: t.Type,
		Quantity:        t.Quantity,
		ProjectID:       t.ProjectID,
		ProjectName:     t.ProjectName,
		ReferenceNo:     t.ReferenceNo,
		TransactionDate: t.TransactionDate,
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses convierte un listado; nunca devuelve nil.
func ToTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}

// ToNotificationResponse convierte la entidad a DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
	}
}

// ToProjectAvailability arma la respuesta a partir del resultado de la conciliación.
func ToProjectAvailability(project *entity.Project, res *availability.Result) *ProjectAvailabilityResponse {
	items := make([]ItemAvailabilityDTO, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, ItemAvailabilityDTO{
			ItemID:           it.ItemID,
			ItemCode:         it.ItemCode,
			ItemName:         it.ItemName,
			RequiredQuantity: it.RequiredQuantity,
			AvailableStock:   it.AvailableStock,
			Shortfall:        it.Shortfall,
			IsAvailable:      it.IsAvailable,
		})
	}
	return &ProjectAvailabilityResponse{
		ProjectID:         project.ID,
		ProjectName:       project.Name,
		AllItemsAvailable: res.AllItemsAvailable,
		Items:             items,
	}
}
