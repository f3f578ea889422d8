package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of accepted payment methods. The dashboard
// buckets month totals by method, so the set must stay exhaustive: adding a
// value here requires a matching bucket in the overview.

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodDebito   PaymentMethod = "DEBITO"
	PaymentMethodCredito  PaymentMethod = "CREDITO"
	PaymentMethodDinheiro PaymentMethod = "DINHEIRO"
	PaymentMethodBoleto   PaymentMethod = "BOLETO"
	PaymentMethodOutros   PaymentMethod = "OUTROS"
)

// PaymentMethods lists every method in bucket order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodPix,
		PaymentMethodDebito,
		PaymentMethodCredito,
		PaymentMethodDinheiro,
		PaymentMethodBoleto,
		PaymentMethodOutros,
	}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodDebito, PaymentMethodCredito,
		PaymentMethodDinheiro, PaymentMethodBoleto, PaymentMethodOutros:
		return true
	}
	return false
}

// Payment is a recorded payment fact against a work order. There is no
// gateway processing here: the amount is accepted as submitted, including
// overpayment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//   - GSI2 (company_id-data_pagamento-index): company_id, sort key data_pagamento

type Payment struct {
	ID            string          `json:"id"`
	WorkOrderID   string          `json:"workOrderId"`
	CompanyID     string          `json:"companyId"`
	Metodo        PaymentMethod   `json:"metodo"`
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento time.Time       `json:"dataPagamento"`
	NumeroParcela *int            `json:"numeroParcela,omitempty"`
	TotalParcelas *int            `json:"totalParcelas,omitempty"`
}
