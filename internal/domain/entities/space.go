package entities

import "time"

// Space is a physical work bay / wash spot the shop can allocate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id

type Space struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
}

// SpaceAllocation occupies a space over [Inicio, Fim]. Fim is required; an
// allocation counts as occupied at an instant t when Inicio <= t <= Fim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key fim

type SpaceAllocation struct {
	ID          string    `json:"id"`
	SpaceID     string    `json:"spaceId"`
	CompanyID   string    `json:"companyId"`
	WorkOrderID string    `json:"workOrderId,omitempty"`
	Inicio      time.Time `json:"inicio"`
	Fim         time.Time `json:"fim"`
}
