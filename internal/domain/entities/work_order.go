package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus is the lifecycle of an ordem de serviço.
//
// Domain notes:
//   - ORCAMENTO -> ABERTO -> EM_EXECUCAO -> CONCLUIDO is the expected path,
//     with CANCELADO reachable from any non-CONCLUIDO state.
//   - The engine accepts transitions as given; legality of the graph is a
//     caller concern.

type WorkOrderStatus string

const (
	WorkOrderStatusOrcamento  WorkOrderStatus = "ORCAMENTO"
	WorkOrderStatusAberto     WorkOrderStatus = "ABERTO"
	WorkOrderStatusEmExecucao WorkOrderStatus = "EM_EXECUCAO"
	WorkOrderStatusConcluido  WorkOrderStatus = "CONCLUIDO"
	WorkOrderStatusCancelado  WorkOrderStatus = "CANCELADO"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusOrcamento, WorkOrderStatusAberto, WorkOrderStatusEmExecucao,
		WorkOrderStatusConcluido, WorkOrderStatusCancelado:
		return true
	}
	return false
}

// WorkOrder is the billable unit of shop work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id, sort key data_abertura
//
// Monetary invariant, fixed at creation and never recomputed on update:
//
//	totalLiquido = totalBruto - descontoTotal + acrescimoTotal
//
// NumeroSequencial is unique and strictly increasing per company. Numbers are
// never reused, even after cancellation.

type WorkOrder struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	NumeroSequencial int64           `json:"numeroSequencial"`
	ClientID         string          `json:"clientId"`
	VehicleID        string          `json:"vehicleId"`
	Status           WorkOrderStatus `json:"status"`
	TotalBruto       decimal.Decimal `json:"totalBruto"`
	DescontoTotal    decimal.Decimal `json:"descontoTotal"`
	AcrescimoTotal   decimal.Decimal `json:"acrescimoTotal"`
	TotalLiquido     decimal.Decimal `json:"totalLiquido"`
	FormaRecebimento string          `json:"formaRecebimento,omitempty"`
	AgendamentoID    string          `json:"agendamentoId,omitempty"`
	DataAbertura     time.Time       `json:"dataAbertura"`
	DataConclusao    *time.Time      `json:"dataConclusao,omitempty"`

	Items       []WorkOrderItem `json:"items,omitempty"`
	Payments    []Payment       `json:"payments,omitempty"`
	Receivables []Receivable    `json:"receivables,omitempty"`
}

// WorkOrderItem is a single service line inside a work order. Its contribution
// to the order total is precoUnitario*quantidade - desconto + acrescimo.
type WorkOrderItem struct {
	ID            string          `json:"id"`
	WorkOrderID   string          `json:"workOrderId"`
	ServiceID     string          `json:"serviceId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	Acrescimo     decimal.Decimal `json:"acrescimo"`

	Service *Service `json:"service,omitempty"`
}

// WorkOrderRef is the projection used by aggregations that only need to walk
// from an order to its client.
type WorkOrderRef struct {
	ID           string
	ClientID     string
	Status       WorkOrderStatus
	DataAbertura time.Time
}

/// WorkOrderBundle groups every record born from one Create call: the order,
// its items, submitted payments, the optional receivable for the unpaid
// remainder and any post-sale follow-ups. The repository persists the whole
// bundle in one store transaction; none of it is durable if any part fails.
//
// PrevSequence is the last sequence number observed for the company when the
// bundle was assembled. The store advances the company sequence from exactly
// that value, so a concurrent creation cancels the transaction instead of
// duplicating a number.
type WorkOrderBundle struct {
	Order        WorkOrder
	Items        []WorkOrderItem
	Payments     []Payment
	Receivable   *Receivable
	FollowUps    []FollowUp
	PrevSequence int64
}
