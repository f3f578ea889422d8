package interfaces

import (
	"context"
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentRepository reads recorded payment facts. Payments are only ever
// written through IWorkOrderRepository.CreateAtomic.

type IPaymentRepository interface {
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	ListByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.Payment, error)
}

// IReceivableRepository reads and settles receivables. Creation rides the
// work-order transaction; Settle returns the zero value when the id is absent
// for the company.

type IReceivableRepository interface {
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Receivable, error)
	ListByCompany(ctx context.Context, companyID string, status *entities.ReceivableStatus) ([]entities.Receivable, error)
	ListPaidInPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.Receivable, error)
	Settle(ctx context.Context, companyID, id string, valorPago decimal.Decimal, dataPagamento time.Time) (entities.Receivable, error)
}

type IFollowUpRepository interface {
	ListByCompany(ctx context.Context, companyID string, status *entities.FollowUpStatus) ([]entities.FollowUp, error)
	CountPendingByContactPeriod(ctx context.Context, companyID string, start, end time.Time) (int, error)
	CountDoneByUpdatedPeriod(ctx context.Context, companyID string, start, end time.Time) (int, error)
	MarkDone(ctx context.Context, companyID, id string, when time.Time) (entities.FollowUp, error)
}
