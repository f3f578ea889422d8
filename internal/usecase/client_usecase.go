package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNameRequired = errors.New("client nome_completo is required")
)

type CreateClientInput struct {
	NomeCompleto string
	Telefone     string
	Email        string
}

type IClientUseCase interface {
	Create(ctx context.Context, companyID string, in CreateClientInput) (entities.Client, error)
	FindAll(ctx context.Context, companyID string) ([]entities.Client, error)
	FindOne(ctx context.Context, companyID, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, companyID string, in CreateClientInput) (entities.Client, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Client{}, ErrInvalidCompanyID
	}
	if strings.TrimSpace(in.NomeCompleto) == "" {
		return entities.Client{}, ErrClientNameRequired
	}

	c := entities.Client{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		NomeCompleto: strings.TrimSpace(in.NomeCompleto),
		Telefone:     strings.TrimSpace(in.Telefone),
		Email:        strings.TrimSpace(in.Email),
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) FindAll(ctx context.Context, companyID string) ([]entities.Client, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompany(ctx, companyID)
}

func (u *ClientUseCase) FindOne(ctx context.Context, companyID, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}

	c, err := u.repo.GetByID(ctx, strings.TrimSpace(companyID), id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
