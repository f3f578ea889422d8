package response

import (
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DashboardOverviewResponse mirrors the aggregated snapshot. por_metodo is
// keyed by method name and always carries all six buckets.

type DashboardOverviewResponse struct {
	User        DashboardUserResponse        `json:"user"`
	Company     DashboardCompanyResponse     `json:"company"`
	Vendas      DashboardVendasResponse      `json:"vendas"`
	Financeiro  DashboardFinanceiroResponse  `json:"financeiro"`
	Orcamentos  DashboardOrcamentosResponse  `json:"orcamentos"`
	Vagas       DashboardVagasResponse       `json:"vagas"`
	PosVenda    DashboardPosVendaResponse    `json:"pos_venda"`
	TopClientes []DashboardTopClientResponse `json:"top_clientes"`
}

type DashboardUserResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Role string `json:"role"`
}

type DashboardCompanyResponse struct {
	ID           string    `json:"id"`
	NomeFantasia string    `json:"nome_fantasia"`
	Plano        *string   `json:"plano"`
	CreatedAt    time.Time `json:"created_at"`
}

type DashboardVendasResponse struct {
	TotalPagoMes decimal.Decimal            `json:"total_pago_mes"`
	PorMetodo    map[string]decimal.Decimal `json:"por_metodo"`
}

type DashboardFinanceiroResponse struct {
	EntradasHoje       decimal.Decimal `json:"entradas_hoje"`
	SaidasHoje         decimal.Decimal `json:"saidas_hoje"`
	SaldoEstimado      decimal.Decimal `json:"saldo_estimado"`
	TotalFaturasCartao decimal.Decimal `json:"total_faturas_cartao"`
}

type DashboardOrcamentosResponse struct {
	OrcPendentes int `json:"orc_pendentes"`
	OrcAprovados int `json:"orc_aprovados"`
}

type DashboardVagasResponse struct {
	TotalVagas          int `json:"total_vagas"`
	VagasOcupadasAgora  int `json:"vagas_ocupadas_agora"`
	VagasConcluidasHoje int `json:"vagas_concluidas_hoje"`
}

type DashboardPosVendaResponse struct {
	ContatosPendentesHoje   int `json:"contatos_pendentes_hoje"`
	PosVendasRealizadasHoje int `json:"pos_vendas_realizadas_hoje"`
}

type DashboardTopClientResponse struct {
	ClientID     string          `json:"client_id"`
	NomeCompleto string          `json:"nome_completo"`
	TotalGasto   decimal.Decimal `json:"total_gasto"`
	QtdeServicos int             `json:"qtde_servicos"`
}

func FromDashboardOverview(o entities.DashboardOverview) DashboardOverviewResponse {
	porMetodo := make(map[string]decimal.Decimal, len(o.Vendas.PorMetodo))
	for metodo, total := range o.Vendas.PorMetodo {
		porMetodo[string(metodo)] = total
	}

	topClientes := make([]DashboardTopClientResponse, 0, len(o.TopClientes))
	for _, tc := range o.TopClientes {
		topClientes = append(topClientes, DashboardTopClientResponse{
			ClientID:     tc.ClientID,
			NomeCompleto: tc.NomeCompleto,
			TotalGasto:   tc.TotalGasto,
			QtdeServicos: tc.QtdeServicos,
		})
	}

	return DashboardOverviewResponse{
		User: DashboardUserResponse{
			ID:   o.User.ID,
			Nome: o.User.Nome,
			Role: o.User.Role,
		},
		Company: DashboardCompanyResponse{
			ID:           o.Company.ID,
			NomeFantasia: o.Company.NomeFantasia,
			Plano:        o.Company.Plano,
			CreatedAt:    o.Company.CreatedAt,
		},
		Vendas: DashboardVendasResponse{
			TotalPagoMes: o.Vendas.TotalPagoMes,
			PorMetodo:    porMetodo,
		},
		Financeiro: DashboardFinanceiroResponse{
			EntradasHoje:       o.Financeiro.EntradasHoje,
			SaidasHoje:         o.Financeiro.SaidasHoje,
			SaldoEstimado:      o.Financeiro.SaldoEstimado,
			TotalFaturasCartao: o.Financeiro.TotalFaturasCartao,
		},
		Orcamentos: DashboardOrcamentosResponse{
			OrcPendentes: o.Orcamentos.OrcPendentes,
			OrcAprovados: o.Orcamentos.OrcAprovados,
		},
		Vagas: DashboardVagasResponse{
			TotalVagas:          o.Vagas.TotalVagas,
			VagasOcupadasAgora:  o.Vagas.VagasOcupadasAgora,
			VagasConcluidasHoje: o.Vagas.VagasConcluidasHoje,
		},
		PosVenda: DashboardPosVendaResponse{
			ContatosPendentesHoje:   o.PosVenda.ContatosPendentesHoje,
			PosVendasRealizadasHoje: o.PosVenda.PosVendasRealizadasHoje,
		},
		TopClientes: topClientes,
	}
}
