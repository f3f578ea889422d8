package response

import (
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type WorkOrderResponse struct {
	ID               string          `json:"id"`
	NumeroSequencial int64           `json:"numero_sequencial"`
	ClientID         string          `json:"client_id"`
	VehicleID        string          `json:"vehicle_id"`
	Status           string          `json:"status"`
	TotalBruto       decimal.Decimal `json:"total_bruto"`
	DescontoTotal    decimal.Decimal `json:"desconto_total"`
	AcrescimoTotal   decimal.Decimal `json:"acrescimo_total"`
	TotalLiquido     decimal.Decimal `json:"total_liquido"`
	FormaRecebimento string          `json:"forma_recebimento,omitempty"`
	AgendamentoID    string          `json:"agendamento_id,omitempty"`
	DataAbertura     time.Time       `json:"data_abertura"`
	DataConclusao    *time.Time      `json:"data_conclusao,omitempty"`

	Items       []WorkOrderItemResponse `json:"items,omitempty"`
	Payments    []PaymentResponse       `json:"payments,omitempty"`
	Receivables []ReceivableResponse    `json:"receivables,omitempty"`
}

type WorkOrderItemResponse struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"service_id"`
	ServiceNome   string          `json:"service_nome,omitempty"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	Acrescimo     decimal.Decimal `json:"acrescimo"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	Metodo        string          `json:"metodo"`
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento time.Time       `json:"data_pagamento"`
	NumeroParcela *int            `json:"numero_parcela,omitempty"`
	TotalParcelas *int            `json:"total_parcelas,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:               o.ID,
		NumeroSequencial: o.NumeroSequencial,
		ClientID:         o.ClientID,
		VehicleID:        o.VehicleID,
		Status:           string(o.Status),
		TotalBruto:       o.TotalBruto,
		DescontoTotal:    o.DescontoTotal,
		AcrescimoTotal:   o.AcrescimoTotal,
		TotalLiquido:     o.TotalLiquido,
		FormaRecebimento: o.FormaRecebimento,
		AgendamentoID:    o.AgendamentoID,
		DataAbertura:     o.DataAbertura,
		DataConclusao:    o.DataConclusao,
	}
	for _, it := range o.Items {
		item := WorkOrderItemResponse{
			ID:            it.ID,
			ServiceID:     it.ServiceID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Desconto:      it.Desconto,
			Acrescimo:     it.Acrescimo,
		}
		if it.Service != nil {
			item.ServiceNome = it.Service.Nome
		}
		resp.Items = append(resp.Items, item)
	}
	for _, p := range o.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:            p.ID,
			Metodo:        string(p.Metodo),
			Valor:         p.Valor,
			DataPagamento: p.DataPagamento,
			NumeroParcela: p.NumeroParcela,
			TotalParcelas: p.TotalParcelas,
		})
	}
	for _, rc := range o.Receivables {
		resp.Receivables = append(resp.Receivables, FromReceivable(rc))
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
