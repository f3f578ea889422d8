package interfaces

import (
	"context"
	"time"

	"gestauto/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for work orders and
// their line items.
//
// CreateAtomic must persist the whole bundle in one store transaction that
// also advances the company sequence from bundle.PrevSequence to the order's
// NumeroSequencial; when another writer advanced it first, the transaction is
// cancelled and ErrSequenceConflict is returned with nothing written.
//
// Point reads are tenant-checked: an id that exists under another company
// resolves to the zero value, never to the foreign record.

type IWorkOrderRepository interface {
	LastSequence(ctx context.Context, companyID string) (int64, error)
	CreateAtomic(ctx context.Context, bundle entities.WorkOrderBundle) error
	GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error)
	ListByCompany(ctx context.Context, companyID string, status *entities.WorkOrderStatus) ([]entities.WorkOrder, error)
	ListItemsByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderItem, error)
	UpdateMutable(ctx context.Context, companyID, id string, status *entities.WorkOrderStatus, formaRecebimento *string, dataConclusao *time.Time) (entities.WorkOrder, error)
	ListRefsByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.WorkOrderRef, error)
	ListRefsByIDs(ctx context.Context, companyID string, ids []string) ([]entities.WorkOrderRef, error)
}
