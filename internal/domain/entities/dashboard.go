package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverview is the read-only snapshot served to the dashboard. Every
// window inside it is derived from the single instant the caller injected, so
// the sub-aggregations cannot drift across a request.

type DashboardOverview struct {
	User        DashboardUser        `json:"user"`
	Company     DashboardCompany     `json:"company"`
	Vendas      DashboardVendas      `json:"vendas"`
	Financeiro  DashboardFinanceiro  `json:"financeiro"`
	Orcamentos  DashboardOrcamentos  `json:"orcamentos"`
	Vagas       DashboardVagas       `json:"vagas"`
	PosVenda    DashboardPosVenda    `json:"posVenda"`
	TopClientes []DashboardTopClient `json:"topClientes"`
}

type DashboardUser struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Role string `json:"role"`
}

type DashboardCompany struct {
	ID           string    `json:"id"`
	NomeFantasia string    `json:"nomeFantasia"`
	Plano        *string   `json:"plano"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DashboardVendas carries month payment totals. PorMetodo always has all six
// method buckets, zero-filled for methods without activity.
type DashboardVendas struct {
	TotalPagoMes decimal.Decimal                   `json:"totalPagoMes"`
	PorMetodo    map[PaymentMethod]decimal.Decimal `json:"porMetodo"`
}

type DashboardFinanceiro struct {
	EntradasHoje       decimal.Decimal `json:"entradasHoje"`
	SaidasHoje         decimal.Decimal `json:"saidasHoje"`
	SaldoEstimado      decimal.Decimal `json:"saldoEstimado"`
	TotalFaturasCartao decimal.Decimal `json:"totalFaturasCartao"`
}

type DashboardOrcamentos struct {
	OrcPendentes int `json:"orcPendentes"`
	OrcAprovados int `json:"orcAprovados"`
}

type DashboardVagas struct {
	TotalVagas          int `json:"totalVagas"`
	VagasOcupadasAgora  int `json:"vagasOcupadasAgora"`
	VagasConcluidasHoje int `json:"vagasConcluidasHoje"`
}

type DashboardPosVenda struct {
	ContatosPendentesHoje   int `json:"contatosPendentesHoje"`
	PosVendasRealizadasHoje int `json:"posVendasRealizadasHoje"`
}

type DashboardTopClient struct {
	ClientID     string          `json:"clientId"`
	NomeCompleto string          `json:"nomeCompleto"`
	TotalGasto   decimal.Decimal `json:"totalGasto"`
	QtdeServicos int             `json:"qtdeServicos"`
}
