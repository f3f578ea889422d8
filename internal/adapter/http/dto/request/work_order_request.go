package request

import (
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase"

	"github.com/shopspring/decimal"
)

// WorkOrderCreateRequest is the payload for work-order creation. Items carry
// the charged unit price (snapshot, not a catalog lookup); payments are
// recorded facts, not gateway charges.

type WorkOrderCreateRequest struct {
	ClientID             string                 `json:"client_id" binding:"required"`
	VehicleID            string                 `json:"vehicle_id" binding:"required"`
	Status               string                 `json:"status,omitempty"`
	FormaRecebimento     string                 `json:"forma_recebimento,omitempty"`
	AgendamentoID        string                 `json:"agendamento_id,omitempty"`
	Items                []WorkOrderItemRequest `json:"items" binding:"required"`
	Payments             []PaymentRequest       `json:"payments,omitempty"`
	ReceivableProjection *time.Time             `json:"data_prevista_recebimento,omitempty"`
}

type WorkOrderItemRequest struct {
	ServiceID     string           `json:"service_id" binding:"required"`
	PrecoUnitario decimal.Decimal  `json:"preco_unitario"`
	Quantidade    *int             `json:"quantidade,omitempty"`
	Desconto      *decimal.Decimal `json:"desconto,omitempty"`
	Acrescimo     *decimal.Decimal `json:"acrescimo,omitempty"`
}

type PaymentRequest struct {
	Metodo        string          `json:"metodo" binding:"required"`
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento *time.Time      `json:"data_pagamento,omitempty"`
	NumeroParcela *int            `json:"numero_parcela,omitempty"`
	TotalParcelas *int            `json:"total_parcelas,omitempty"`
}

func (r WorkOrderCreateRequest) ToInput() usecase.CreateWorkOrderInput {
	in := usecase.CreateWorkOrderInput{
		ClientID:             r.ClientID,
		VehicleID:            r.VehicleID,
		FormaRecebimento:     r.FormaRecebimento,
		AgendamentoID:        r.AgendamentoID,
		ReceivableProjection: r.ReceivableProjection,
	}
	if r.Status != "" {
		status := entities.WorkOrderStatus(r.Status)
		in.Status = &status
	}
	in.Items = make([]usecase.WorkOrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		in.Items = append(in.Items, usecase.WorkOrderItemInput{
			ServiceID:     it.ServiceID,
			PrecoUnitario: it.PrecoUnitario,
			Quantidade:    it.Quantidade,
			Desconto:      it.Desconto,
			Acrescimo:     it.Acrescimo,
		})
	}
	in.Payments = make([]usecase.PaymentInput, 0, len(r.Payments))
	for _, p := range r.Payments {
		in.Payments = append(in.Payments, usecase.PaymentInput{
			Metodo:        entities.PaymentMethod(p.Metodo),
			Valor:         p.Valor,
			DataPagamento: p.DataPagamento,
			NumeroParcela: p.NumeroParcela,
			TotalParcelas: p.TotalParcelas,
		})
	}
	return in
}

// WorkOrderUpdateRequest carries the two mutable fields. Absent fields are
// left untouched.

type WorkOrderUpdateRequest struct {
	Status           *string `json:"status,omitempty"`
	FormaRecebimento *string `json:"forma_recebimento,omitempty"`
}

func (r WorkOrderUpdateRequest) ToInput() usecase.UpdateWorkOrderInput {
	in := usecase.UpdateWorkOrderInput{
		FormaRecebimento: r.FormaRecebimento,
	}
	if r.Status != nil {
		status := entities.WorkOrderStatus(*r.Status)
		in.Status = &status
	}
	return in
}
