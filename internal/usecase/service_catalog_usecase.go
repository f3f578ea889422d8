package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNameRequired = errors.New("service nome is required")
	ErrInvalidServiceValue = errors.New("invalid service value")
)

type ServiceInput struct {
	Nome           string
	Descricao      string
	Categoria      string
	DuracaoMinutos *int
	PrecoBase      decimal.Decimal
	Ativo          *bool
	GeraPosVenda   *bool
	DiasFollowUp   *int
}

type IServiceCatalogUseCase interface {
	Create(ctx context.Context, companyID string, in ServiceInput) (entities.Service, error)
	FindAll(ctx context.Context, companyID, search string) ([]entities.Service, error)
	FindOne(ctx context.Context, companyID, id string) (entities.Service, error)
	Update(ctx context.Context, companyID, id string, in ServiceInput) (entities.Service, error)
}

type ServiceCatalogUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceRepository) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo}
}

func validateServiceInput(in ServiceInput) error {
	if strings.TrimSpace(in.Nome) == "" {
		return ErrServiceNameRequired
	}
	if in.PrecoBase.IsNegative() {
		return ErrInvalidServiceValue
	}
	if in.DuracaoMinutos != nil && *in.DuracaoMinutos < 0 {
		return ErrInvalidServiceValue
	}
	if in.DiasFollowUp != nil && *in.DiasFollowUp < 0 {
		return ErrInvalidServiceValue
	}
	return nil
}

func (u *ServiceCatalogUseCase) Create(ctx context.Context, companyID string, in ServiceInput) (entities.Service, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Service{}, ErrInvalidCompanyID
	}
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}
	geraPosVenda := false
	if in.GeraPosVenda != nil {
		geraPosVenda = *in.GeraPosVenda
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:             uuid.NewString(),
		CompanyID:      companyID,
		Nome:           strings.TrimSpace(in.Nome),
		Descricao:      strings.TrimSpace(in.Descricao),
		Categoria:      strings.TrimSpace(in.Categoria),
		DuracaoMinutos: in.DuracaoMinutos,
		PrecoBase:      in.PrecoBase,
		Ativo:          ativo,
		GeraPosVenda:   geraPosVenda,
		DiasFollowUp:   in.DiasFollowUp,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceCatalogUseCase) FindAll(ctx context.Context, companyID, search string) ([]entities.Service, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompany(ctx, companyID, strings.TrimSpace(search))
}

func (u *ServiceCatalogUseCase) FindOne(ctx context.Context, companyID, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	s, err := u.repo.GetByID(ctx, strings.TrimSpace(companyID), id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceCatalogUseCase) Update(ctx context.Context, companyID, id string, in ServiceInput) (entities.Service, error) {
	existing, err := u.FindOne(ctx, companyID, id)
	if err != nil {
		return entities.Service{}, err
	}
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	existing.Nome = strings.TrimSpace(in.Nome)
	existing.Descricao = strings.TrimSpace(in.Descricao)
	existing.Categoria = strings.TrimSpace(in.Categoria)
	existing.DuracaoMinutos = in.DuracaoMinutos
	existing.PrecoBase = in.PrecoBase
	if in.Ativo != nil {
		existing.Ativo = *in.Ativo
	}
	if in.GeraPosVenda != nil {
		existing.GeraPosVenda = *in.GeraPosVenda
	}
	existing.DiasFollowUp = in.DiasFollowUp
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}
