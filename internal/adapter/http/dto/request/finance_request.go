package request

import (
	"time"

	"gestauto/internal/usecase"

	"github.com/shopspring/decimal"
)

// ReceivableSettleRequest settles an open receivable. data_pagamento defaults
// to the server clock when absent.

type ReceivableSettleRequest struct {
	ValorPago     decimal.Decimal `json:"valor_pago"`
	DataPagamento *time.Time      `json:"data_pagamento,omitempty"`
}

func (r ReceivableSettleRequest) ToInput() usecase.SettleReceivableInput {
	return usecase.SettleReceivableInput{
		ValorPago:     r.ValorPago,
		DataPagamento: r.DataPagamento,
	}
}

type SpaceCreateRequest struct {
	Nome string `json:"nome" binding:"required"`
}

type SpaceAllocationRequest struct {
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Inicio      time.Time `json:"inicio" binding:"required"`
	Fim         time.Time `json:"fim" binding:"required"`
}

func (r SpaceAllocationRequest) ToInput() usecase.CreateAllocationInput {
	return usecase.CreateAllocationInput{
		WorkOrderID: r.WorkOrderID,
		Inicio:      r.Inicio,
		Fim:         r.Fim,
	}
}
