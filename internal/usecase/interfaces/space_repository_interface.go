package interfaces

import (
	"context"
	"time"

	"gestauto/internal/domain/entities"
)

type ISpaceRepository interface {
	Create(ctx context.Context, s entities.Space) (entities.Space, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Space, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}

// ISpaceAllocationRepository counts allocation intervals for the dashboard.
// "Occupied at" means inicio <= at <= fim.

type ISpaceAllocationRepository interface {
	Create(ctx context.Context, a entities.SpaceAllocation) (entities.SpaceAllocation, error)
	CountOccupiedAt(ctx context.Context, companyID string, at time.Time) (int, error)
	CountEndingBetween(ctx context.Context, companyID string, start, end time.Time) (int, error)
}
