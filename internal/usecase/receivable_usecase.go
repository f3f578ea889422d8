package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrReceivableNotFound      = errors.New("receivable not found")
	ErrInvalidReceivableStatus = errors.New("invalid receivable status")
	ErrInvalidSettleValue      = errors.New("invalid settle value")
)

type SettleReceivableInput struct {
	ValorPago     decimal.Decimal
	DataPagamento *time.Time
}

// IReceivableUseCase lists open/settled receivables and settles them.
// Settling feeds the dashboard's cash-out figures.

type IReceivableUseCase interface {
	FindAll(ctx context.Context, companyID string, status *entities.ReceivableStatus) ([]entities.Receivable, error)
	Settle(ctx context.Context, companyID, id string, in SettleReceivableInput) (entities.Receivable, error)
}

type ReceivableUseCase struct {
	repo interfaces.IReceivableRepository

	now func() time.Time
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(repo interfaces.IReceivableRepository) *ReceivableUseCase {
	return &ReceivableUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *ReceivableUseCase) FindAll(ctx context.Context, companyID string, status *entities.ReceivableStatus) ([]entities.Receivable, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if status != nil && *status != entities.ReceivableStatusAberto && *status != entities.ReceivableStatusPago {
		return nil, ErrInvalidReceivableStatus
	}
	return u.repo.ListByCompany(ctx, companyID, status)
}

func (u *ReceivableUseCase) Settle(ctx context.Context, companyID, id string, in SettleReceivableInput) (entities.Receivable, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	if !in.ValorPago.IsPositive() {
		return entities.Receivable{}, ErrInvalidSettleValue
	}

	paidAt := u.now()
	if in.DataPagamento != nil {
		paidAt = *in.DataPagamento
	}

	settled, err := u.repo.Settle(ctx, companyID, id, in.ValorPago, paidAt)
	if err != nil {
		log.Printf("[receivable][usecase] settle failed company_id=%s receivable_id=%s err=%v", companyID, id, err)
		return entities.Receivable{}, err
	}
	if settled.ID == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	log.Printf("[receivable][usecase] settle success company_id=%s receivable_id=%s valor_pago=%s", companyID, id, in.ValorPago)
	return settled, nil
}
