package entities

import "time"

// Vehicle storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key placa

type Vehicle struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	ClientID  string    `json:"clientId"`
	Placa     string    `json:"placa"`
	Modelo    string    `json:"modelo,omitempty"`
	Cor       string    `json:"cor,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
