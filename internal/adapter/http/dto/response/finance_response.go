package response

import (
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ReceivableResponse struct {
	ID            string           `json:"id"`
	ClientID      string           `json:"client_id"`
	WorkOrderID   string           `json:"work_order_id"`
	ValorPrevisto decimal.Decimal  `json:"valor_previsto"`
	DataPrevista  time.Time        `json:"data_prevista"`
	Status        string           `json:"status"`
	ValorPago     *decimal.Decimal `json:"valor_pago,omitempty"`
	DataPagamento *time.Time       `json:"data_pagamento,omitempty"`
}

func FromReceivable(rc entities.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:            rc.ID,
		ClientID:      rc.ClientID,
		WorkOrderID:   rc.WorkOrderID,
		ValorPrevisto: rc.ValorPrevisto,
		DataPrevista:  rc.DataPrevista,
		Status:        string(rc.Status),
		ValorPago:     rc.ValorPago,
		DataPagamento: rc.DataPagamento,
	}
}

func FromReceivables(receivables []entities.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, 0, len(receivables))
	for _, rc := range receivables {
		out = append(out, FromReceivable(rc))
	}
	return out
}

type FollowUpResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	ClientID    string    `json:"client_id"`
	ServiceID   string    `json:"service_id"`
	DataContato time.Time `json:"data_contato"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromFollowUp(f entities.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		ID:          f.ID,
		WorkOrderID: f.WorkOrderID,
		ClientID:    f.ClientID,
		ServiceID:   f.ServiceID,
		DataContato: f.DataContato,
		Status:      string(f.Status),
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromFollowUps(followUps []entities.FollowUp) []FollowUpResponse {
	out := make([]FollowUpResponse, 0, len(followUps))
	for _, f := range followUps {
		out = append(out, FromFollowUp(f))
	}
	return out
}

type SpaceResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSpace(s entities.Space) SpaceResponse {
	return SpaceResponse{ID: s.ID, Nome: s.Nome, CreatedAt: s.CreatedAt}
}

type SpaceAllocationResponse struct {
	ID          string    `json:"id"`
	SpaceID     string    `json:"space_id"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Inicio      time.Time `json:"inicio"`
	Fim         time.Time `json:"fim"`
}

func FromSpaceAllocation(a entities.SpaceAllocation) SpaceAllocationResponse {
	return SpaceAllocationResponse{
		ID:          a.ID,
		SpaceID:     a.SpaceID,
		WorkOrderID: a.WorkOrderID,
		Inicio:      a.Inicio,
		Fim:         a.Fim,
	}
}
