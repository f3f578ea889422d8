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
	ErrVehiclePlacaRequired = errors.New("vehicle placa is required")
)

type CreateVehicleInput struct {
	ClientID string
	Placa    string
	Modelo   string
	Cor      string
}

type IVehicleUseCase interface {
	Create(ctx context.Context, companyID string, in CreateVehicleInput) (entities.Vehicle, error)
	FindAll(ctx context.Context, companyID string) ([]entities.Vehicle, error)
	FindOne(ctx context.Context, companyID, id string) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo       interfaces.IVehicleRepository
	clientRepo interfaces.IClientRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, clientRepo interfaces.IClientRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clientRepo: clientRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, companyID string, in CreateVehicleInput) (entities.Vehicle, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Vehicle{}, ErrInvalidCompanyID
	}
	if strings.TrimSpace(in.Placa) == "" {
		return entities.Vehicle{}, ErrVehiclePlacaRequired
	}
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.Vehicle{}, ErrInvalidClientID
	}

	// The owner must exist under the same company.
	owner, err := u.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrClientNotFound
	}

	v := entities.Vehicle{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		Placa:     strings.ToUpper(strings.TrimSpace(in.Placa)),
		Modelo:    strings.TrimSpace(in.Modelo),
		Cor:       strings.TrimSpace(in.Cor),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) FindAll(ctx context.Context, companyID string) ([]entities.Vehicle, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompany(ctx, companyID)
}

func (u *VehicleUseCase) FindOne(ctx context.Context, companyID, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	v, err := u.repo.GetByID(ctx, strings.TrimSpace(companyID), id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}
