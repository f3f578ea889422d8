package interfaces

import (
	"context"

	"gestauto/internal/domain/entities"
)

// Catalog repositories back the tenant-scoped lookup entities the work-order
// engine validates against. GetByID/ListByIDs never leak records from another
// company: a foreign or unknown id comes back as the zero value / is simply
// missing from the result.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Client, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.Client, error)
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]entities.Client, error)
}

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Vehicle, error)
	ListByCompany(ctx context.Context, companyID string) ([]entities.Vehicle, error)
}

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Service, error)
	ListByCompany(ctx context.Context, companyID, search string) ([]entities.Service, error)
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
}

type ICompanyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Company, error)
}
