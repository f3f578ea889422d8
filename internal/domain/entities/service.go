package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a tenant-scoped catalog entry. GeraPosVenda plus a non-nil
// DiasFollowUp make the work-order engine schedule a post-sale contact; either
// one missing means no follow-up for this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key nome

type Service struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"companyId"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	DuracaoMinutos *int            `json:"duracaoMinutos,omitempty"`
	PrecoBase      decimal.Decimal `json:"precoBase"`
	Ativo          bool            `json:"ativo"`
	GeraPosVenda   bool            `json:"geraPosVenda"`
	DiasFollowUp   *int            `json:"diasFollowUp,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
