package entities

import "time"

// Company is the tenant. Read-only in this service; provisioning happens
// elsewhere.

type Company struct {
	ID           string    `json:"id"`
	NomeFantasia string    `json:"nomeFantasia"`
	Plano        *string   `json:"plano"`
	CreatedAt    time.Time `json:"createdAt"`
}
