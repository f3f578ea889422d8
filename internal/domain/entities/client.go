package entities

import "time"

// Client storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key nome_completo

type Client struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	NomeCompleto string    `json:"nomeCompleto"`
	Telefone     string    `json:"telefone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
