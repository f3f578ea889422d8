package request

import (
	"gestauto/internal/usecase"

	"github.com/shopspring/decimal"
)

type ClientCreateRequest struct {
	NomeCompleto string `json:"nome_completo" binding:"required"`
	Telefone     string `json:"telefone,omitempty"`
	Email        string `json:"email,omitempty"`
}

func (r ClientCreateRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		NomeCompleto: r.NomeCompleto,
		Telefone:     r.Telefone,
		Email:        r.Email,
	}
}

type VehicleCreateRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Placa    string `json:"placa" binding:"required"`
	Modelo   string `json:"modelo,omitempty"`
	Cor      string `json:"cor,omitempty"`
}

func (r VehicleCreateRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		ClientID: r.ClientID,
		Placa:    r.Placa,
		Modelo:   r.Modelo,
		Cor:      r.Cor,
	}
}

type ServiceRequest struct {
	Nome           string          `json:"nome" binding:"required"`
	Descricao      string          `json:"descricao,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	DuracaoMinutos *int            `json:"duracao_minutos,omitempty"`
	PrecoBase      decimal.Decimal `json:"preco_base"`
	Ativo          *bool           `json:"ativo,omitempty"`
	GeraPosVenda   *bool           `json:"gera_pos_venda,omitempty"`
	DiasFollowUp   *int            `json:"dias_follow_up,omitempty"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Nome:           r.Nome,
		Descricao:      r.Descricao,
		Categoria:      r.Categoria,
		DuracaoMinutos: r.DuracaoMinutos,
		PrecoBase:      r.PrecoBase,
		Ativo:          r.Ativo,
		GeraPosVenda:   r.GeraPosVenda,
		DiasFollowUp:   r.DiasFollowUp,
	}
}
