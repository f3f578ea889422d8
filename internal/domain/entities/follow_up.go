package entities

import "time"

type FollowUpStatus string

const (
	FollowUpStatusPendente  FollowUpStatus = "PENDENTE"
	FollowUpStatusConcluido FollowUpStatus = "CONCLUIDO"
)

// FollowUp is a scheduled post-sale contact, generated at order creation for
// each distinct service flagged with geraPosVenda and a configured delay.
// DataContato = order creation instant + the service's diasFollowUp.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key data_contato

type FollowUp struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"companyId"`
	WorkOrderID string         `json:"workOrderId"`
	ClientID    string         `json:"clientId"`
	ServiceID   string         `json:"serviceId"`
	DataContato time.Time      `json:"dataContato"`
	Status      FollowUpStatus `json:"status"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
