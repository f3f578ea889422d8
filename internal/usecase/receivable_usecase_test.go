package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestauto/internal/domain/entities"
	mock_interfaces "gestauto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReceivableUseCase_Settle(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("non-positive value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewReceivableUseCase(mock_interfaces.NewMockIReceivableRepository(ctrl))

		_, err := uc.Settle(context.Background(), "comp-1", "rc-1", SettleReceivableInput{ValorPago: dec("0")})
		if !errors.Is(err, ErrInvalidSettleValue) {
			t.Fatalf("expected ErrInvalidSettleValue, got %v", err)
		}
	})

	t.Run("unknown or already settled maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewReceivableUseCase(repo)
		uc.now = func() time.Time { return now }

		repo.EXPECT().Settle(gomock.Any(), "comp-1", "rc-1", dec("40.00"), now).Return(entities.Receivable{}, nil)

		_, err := uc.Settle(context.Background(), "comp-1", "rc-1", SettleReceivableInput{ValorPago: dec("40.00")})
		if !errors.Is(err, ErrReceivableNotFound) {
			t.Fatalf("expected ErrReceivableNotFound, got %v", err)
		}
	})

	t.Run("explicit payment date wins over now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewReceivableUseCase(repo)
		uc.now = func() time.Time { return now }

		paidAt := now.AddDate(0, 0, -2)
		repo.EXPECT().Settle(gomock.Any(), "comp-1", "rc-1", dec("40.00"), paidAt).Return(entities.Receivable{
			ID:            "rc-1",
			Status:        entities.ReceivableStatusPago,
			ValorPago:     decPtr("40.00"),
			DataPagamento: &paidAt,
		}, nil)

		settled, err := uc.Settle(context.Background(), "comp-1", "rc-1", SettleReceivableInput{ValorPago: dec("40.00"), DataPagamento: &paidAt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settled.Status != entities.ReceivableStatusPago {
			t.Fatalf("expected pago, got %s", settled.Status)
		}
		if settled.DataPagamento == nil || !settled.DataPagamento.Equal(paidAt) {
			t.Fatalf("expected payment date %s, got %v", paidAt, settled.DataPagamento)
		}
	})
}

func TestReceivableUseCase_FindAll(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewReceivableUseCase(mock_interfaces.NewMockIReceivableRepository(ctrl))

		bad := entities.ReceivableStatus("vencido")
		_, err := uc.FindAll(context.Background(), "comp-1", &bad)
		if !errors.Is(err, ErrInvalidReceivableStatus) {
			t.Fatalf("expected ErrInvalidReceivableStatus, got %v", err)
		}
	})

	t.Run("passes status filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReceivableRepository(ctrl)
		uc := NewReceivableUseCase(repo)

		status := entities.ReceivableStatusAberto
		repo.EXPECT().ListByCompany(gomock.Any(), "comp-1", &status).Return([]entities.Receivable{{ID: "rc-1"}}, nil)

		out, err := uc.FindAll(context.Background(), "comp-1", &status)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 receivable, got %d", len(out))
		}
	})
}
