package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceivableStatus string

const (
	ReceivableStatusAberto ReceivableStatus = "aberto"
	ReceivableStatusPago   ReceivableStatus = "pago"
)

// Receivable tracks the unpaid remainder of a work order. The engine creates
// at most one per order, always with status aberto and
// valorPrevisto = totalLiquido - sum(payments). Settling is a separate,
// later operation that stamps valorPago and dataPagamento.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//   - GSI2 (company_id-index): company_id, sort key data_prevista
//   - GSI3 (company_id-data_pagamento-index): sparse, rows gain data_pagamento
//     only when settled

type Receivable struct {
	ID            string           `json:"id"`
	CompanyID     string           `json:"companyId"`
	ClientID      string           `json:"clientId"`
	WorkOrderID   string           `json:"workOrderId"`
	ValorPrevisto decimal.Decimal  `json:"valorPrevisto"`
	DataPrevista  time.Time        `json:"dataPrevista"`
	Status        ReceivableStatus `json:"status"`
	ValorPago     *decimal.Decimal `json:"valorPago,omitempty"`
	DataPagamento *time.Time       `json:"dataPagamento,omitempty"`
}
