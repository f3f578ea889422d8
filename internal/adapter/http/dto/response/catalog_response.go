package response

import (
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClientResponse struct {
	ID           string    `json:"id"`
	NomeCompleto string    `json:"nome_completo"`
	Telefone     string    `json:"telefone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		NomeCompleto: c.NomeCompleto,
		Telefone:     c.Telefone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type VehicleResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Placa     string    `json:"placa"`
	Modelo    string    `json:"modelo,omitempty"`
	Cor       string    `json:"cor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Placa:     v.Placa,
		Modelo:    v.Modelo,
		Cor:       v.Cor,
		CreatedAt: v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}

type ServiceResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	DuracaoMinutos *int            `json:"duracao_minutos,omitempty"`
	PrecoBase      decimal.Decimal `json:"preco_base"`
	Ativo          bool            `json:"ativo"`
	GeraPosVenda   bool            `json:"gera_pos_venda"`
	DiasFollowUp   *int            `json:"dias_follow_up,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID,
		Nome:           s.Nome,
		Descricao:      s.Descricao,
		Categoria:      s.Categoria,
		DuracaoMinutos: s.DuracaoMinutos,
		PrecoBase:      s.PrecoBase,
		Ativo:          s.Ativo,
		GeraPosVenda:   s.GeraPosVenda,
		DiasFollowUp:   s.DiasFollowUp,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
