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
	ErrSpaceNameRequired     = errors.New("space nome is required")
	ErrSpaceNotFound         = errors.New("space not found")
	ErrInvalidAllocationSpan = errors.New("allocation fim must be after inicio")
)

type CreateAllocationInput struct {
	WorkOrderID string
	Inicio      time.Time
	Fim         time.Time
}

type ISpaceUseCase interface {
	CreateSpace(ctx context.Context, companyID, nome string) (entities.Space, error)
	Allocate(ctx context.Context, companyID, spaceID string, in CreateAllocationInput) (entities.SpaceAllocation, error)
}

type SpaceUseCase struct {
	spaceRepo      interfaces.ISpaceRepository
	allocationRepo interfaces.ISpaceAllocationRepository
}

var _ ISpaceUseCase = (*SpaceUseCase)(nil)

func NewSpaceUseCase(spaceRepo interfaces.ISpaceRepository, allocationRepo interfaces.ISpaceAllocationRepository) *SpaceUseCase {
	return &SpaceUseCase{spaceRepo: spaceRepo, allocationRepo: allocationRepo}
}

func (u *SpaceUseCase) CreateSpace(ctx context.Context, companyID, nome string) (entities.Space, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Space{}, ErrInvalidCompanyID
	}
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return entities.Space{}, ErrSpaceNameRequired
	}

	s := entities.Space{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Nome:      nome,
		CreatedAt: time.Now().UTC(),
	}
	return u.spaceRepo.Create(ctx, s)
}

func (u *SpaceUseCase) Allocate(ctx context.Context, companyID, spaceID string, in CreateAllocationInput) (entities.SpaceAllocation, error) {
	companyID = strings.TrimSpace(companyID)
	spaceID = strings.TrimSpace(spaceID)
	if spaceID == "" {
		return entities.SpaceAllocation{}, ErrSpaceNotFound
	}
	if in.Inicio.IsZero() || in.Fim.IsZero() || !in.Fim.After(in.Inicio) {
		return entities.SpaceAllocation{}, ErrInvalidAllocationSpan
	}

	space, err := u.spaceRepo.GetByID(ctx, companyID, spaceID)
	if err != nil {
		return entities.SpaceAllocation{}, err
	}
	if space.ID == "" {
		return entities.SpaceAllocation{}, ErrSpaceNotFound
	}

	a := entities.SpaceAllocation{
		ID:          uuid.NewString(),
		SpaceID:     spaceID,
		CompanyID:   companyID,
		WorkOrderID: strings.TrimSpace(in.WorkOrderID),
		Inicio:      in.Inicio,
		Fim:         in.Fim,
	}
	return u.allocationRepo.Create(ctx, a)
}
