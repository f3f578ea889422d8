package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"
	mock_interfaces "gestauto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	repo           *mock_interfaces.MockIWorkOrderRepository
	paymentRepo    *mock_interfaces.MockIPaymentRepository
	receivableRepo *mock_interfaces.MockIReceivableRepository
	clientRepo     *mock_interfaces.MockIClientRepository
	vehicleRepo    *mock_interfaces.MockIVehicleRepository
	serviceRepo    *mock_interfaces.MockIServiceRepository
}

func newWorkOrderUseCaseForTest(ctrl *gomock.Controller, now time.Time) (*WorkOrderUseCase, workOrderMocks) {
	m := workOrderMocks{
		repo:           mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		paymentRepo:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		receivableRepo: mock_interfaces.NewMockIReceivableRepository(ctrl),
		clientRepo:     mock_interfaces.NewMockIClientRepository(ctrl),
		vehicleRepo:    mock_interfaces.NewMockIVehicleRepository(ctrl),
		serviceRepo:    mock_interfaces.NewMockIServiceRepository(ctrl),
	}
	uc := NewWorkOrderUseCase(m.repo, m.paymentRepo, m.receivableRepo, m.clientRepo, m.vehicleRepo, m.serviceRepo)
	uc.now = func() time.Time { return now }
	return uc, m
}

func validCreateInput() CreateWorkOrderInput {
	return CreateWorkOrderInput{
		ClientID:  "cli-1",
		VehicleID: "veh-1",
		Items: []WorkOrderItemInput{
			{ServiceID: "svc-1", PrecoUnitario: dec("100.00")},
		},
		Payments: []PaymentInput{
			{Metodo: entities.PaymentMethodPix, Valor: dec("60.00")},
		},
	}
}

func expectReferencesOK(m workOrderMocks, services ...entities.Service) {
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "comp-1", "cli-1").Return(entities.Client{ID: "cli-1", CompanyID: "comp-1"}, nil)
	m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "comp-1", "veh-1").Return(entities.Vehicle{ID: "veh-1", CompanyID: "comp-1"}, nil)
	m.serviceRepo.EXPECT().ListByIDs(gomock.Any(), "comp-1", gomock.Any()).Return(services, nil)
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("missing client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		in := validCreateInput()
		in.ClientID = "  "
		_, err := uc.Create(context.Background(), "comp-1", in)
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		in := validCreateInput()
		in.Items = nil
		_, err := uc.Create(context.Background(), "comp-1", in)
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("negative item price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		in := validCreateInput()
		in.Items[0].PrecoUnitario = dec("-1.00")
		_, err := uc.Create(context.Background(), "comp-1", in)
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		in := validCreateInput()
		in.Payments[0].Metodo = "CHEQUE"
		_, err := uc.Create(context.Background(), "comp-1", in)
		if !errors.Is(err, ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("client from another company is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "comp-1", "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), "comp-1", validCreateInput())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("unknown service is rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "comp-1", "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "comp-1", "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.serviceRepo.EXPECT().ListByIDs(gomock.Any(), "comp-1", gomock.Any()).Return(nil, nil)

		_, err := uc.Create(context.Background(), "comp-1", validCreateInput())
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success bundles order, items, payments, receivable and follow-up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		svc := entities.Service{ID: "svc-1", CompanyID: "comp-1", Nome: "Lavagem", GeraPosVenda: true, DiasFollowUp: intPtr(7)}
		expectReferencesOK(m, svc)
		m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(41), nil)

		var got entities.WorkOrderBundle
		m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bundle entities.WorkOrderBundle) error {
				got = bundle
				return nil
			})

		order, err := uc.Create(context.Background(), "comp-1", validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Order.NumeroSequencial != 42 {
			t.Fatalf("expected sequence 42, got %d", got.Order.NumeroSequencial)
		}
		if got.PrevSequence != 41 {
			t.Fatalf("expected prev sequence 41, got %d", got.PrevSequence)
		}
		if got.Order.Status != entities.WorkOrderStatusOrcamento {
			t.Fatalf("expected default ORCAMENTO, got %s", got.Order.Status)
		}
		if !got.Order.TotalLiquido.Equal(dec("100.00")) {
			t.Fatalf("expected liquido 100.00, got %s", got.Order.TotalLiquido)
		}
		if len(got.Items) != 1 || got.Items[0].WorkOrderID != got.Order.ID {
			t.Fatalf("expected 1 item bound to the order, got %+v", got.Items)
		}
		if len(got.Payments) != 1 || !got.Payments[0].Valor.Equal(dec("60.00")) {
			t.Fatalf("expected 1 payment of 60.00, got %+v", got.Payments)
		}
		if got.Receivable == nil || !got.Receivable.ValorPrevisto.Equal(dec("40.00")) {
			t.Fatalf("expected receivable of 40.00, got %+v", got.Receivable)
		}
		if len(got.FollowUps) != 1 || !got.FollowUps[0].DataContato.Equal(now.AddDate(0, 0, 7)) {
			t.Fatalf("expected follow-up 7 days out, got %+v", got.FollowUps)
		}

		// The caller gets the populated order without a re-read.
		if order.ID != got.Order.ID {
			t.Fatalf("expected returned order %s, got %s", got.Order.ID, order.ID)
		}
		if len(order.Items) != 1 || order.Items[0].Service == nil || order.Items[0].Service.Nome != "Lavagem" {
			t.Fatalf("expected resolved service on item, got %+v", order.Items)
		}
		if len(order.Receivables) != 1 {
			t.Fatalf("expected receivable on response, got %+v", order.Receivables)
		}
	})

	t.Run("fully paid order creates no receivable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		expectReferencesOK(m, entities.Service{ID: "svc-1", CompanyID: "comp-1"})
		m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(0), nil)

		var got entities.WorkOrderBundle
		m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bundle entities.WorkOrderBundle) error {
				got = bundle
				return nil
			})

		in := validCreateInput()
		in.Payments = []PaymentInput{{Metodo: entities.PaymentMethodPix, Valor: dec("100.00")}}
		if _, err := uc.Create(context.Background(), "comp-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Receivable != nil {
			t.Fatalf("expected no receivable, got %+v", got.Receivable)
		}
		if got.Order.NumeroSequencial != 1 {
			t.Fatalf("expected first sequence 1, got %d", got.Order.NumeroSequencial)
		}
	})

	t.Run("sequence conflict retries with a fresh read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		expectReferencesOK(m, entities.Service{ID: "svc-1", CompanyID: "comp-1"})

		gomock.InOrder(
			m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(10), nil),
			m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).Return(interfaces.ErrSequenceConflict),
			m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(11), nil),
			m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, bundle entities.WorkOrderBundle) error {
					if bundle.Order.NumeroSequencial != 12 {
						t.Fatalf("expected retried sequence 12, got %d", bundle.Order.NumeroSequencial)
					}
					return nil
				}),
		)

		if _, err := uc.Create(context.Background(), "comp-1", validCreateInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict exhaustion surfaces the conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		expectReferencesOK(m, entities.Service{ID: "svc-1", CompanyID: "comp-1"})
		m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(10), nil).Times(sequenceAttempts)
		m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).Return(interfaces.ErrSequenceConflict).Times(sequenceAttempts)

		_, err := uc.Create(context.Background(), "comp-1", validCreateInput())
		if !errors.Is(err, ErrSequenceConflict) {
			t.Fatalf("expected ErrSequenceConflict, got %v", err)
		}
	})

	t.Run("store error is returned as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		expectReferencesOK(m, entities.Service{ID: "svc-1", CompanyID: "comp-1"})
		m.repo.EXPECT().LastSequence(gomock.Any(), "comp-1").Return(int64(0), nil)
		m.repo.EXPECT().CreateAtomic(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := uc.Create(context.Background(), "comp-1", validCreateInput())
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		_, err := uc.Update(context.Background(), "comp-1", " ", UpdateWorkOrderInput{})
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, now)

		bad := entities.WorkOrderStatus("FINALIZADO")
		_, err := uc.Update(context.Background(), "comp-1", "wo-1", UpdateWorkOrderInput{Status: &bad})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		status := entities.WorkOrderStatusAberto
		m.repo.EXPECT().UpdateMutable(gomock.Any(), "comp-1", "wo-missing", &status, nil, nil).Return(entities.WorkOrder{}, nil)

		_, err := uc.Update(context.Background(), "comp-1", "wo-missing", UpdateWorkOrderInput{Status: &status})
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("transition to CONCLUIDO stamps data_conclusao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		status := entities.WorkOrderStatusConcluido
		m.repo.EXPECT().UpdateMutable(gomock.Any(), "comp-1", "wo-1", &status, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, id string, s *entities.WorkOrderStatus, _ *string, dataConclusao *time.Time) (entities.WorkOrder, error) {
				if dataConclusao == nil || !dataConclusao.Equal(now) {
					t.Fatalf("expected conclusion stamped at %s, got %v", now, dataConclusao)
				}
				return entities.WorkOrder{ID: id, Status: *s, DataConclusao: dataConclusao}, nil
			})

		updated, err := uc.Update(context.Background(), "comp-1", "wo-1", UpdateWorkOrderInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.DataConclusao == nil {
			t.Fatal("expected data_conclusao on the updated order")
		}
	})

	t.Run("forma_recebimento alone leaves data_conclusao untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		forma := "PIX"
		m.repo.EXPECT().UpdateMutable(gomock.Any(), "comp-1", "wo-1", nil, &forma, nil).Return(entities.WorkOrder{ID: "wo-1", FormaRecebimento: forma}, nil)

		updated, err := uc.Update(context.Background(), "comp-1", "wo-1", UpdateWorkOrderInput{FormaRecebimento: &forma})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.DataConclusao != nil {
			t.Fatalf("expected nil data_conclusao, got %v", updated.DataConclusao)
		}
	})
}

func TestWorkOrderUseCase_FindOne(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		m.repo.EXPECT().GetByID(gomock.Any(), "comp-1", "wo-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.FindOne(context.Background(), "comp-1", "wo-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("attaches items, payments and receivables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, now)

		order := entities.WorkOrder{ID: "wo-1", CompanyID: "comp-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "comp-1", "wo-1").Return(order, nil)
		m.repo.EXPECT().ListItemsByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.WorkOrderItem{
			{ID: "it-1", WorkOrderID: "wo-1", ServiceID: "svc-1"},
		}, nil)
		m.serviceRepo.EXPECT().ListByIDs(gomock.Any(), "comp-1", []string{"svc-1"}).Return([]entities.Service{
			{ID: "svc-1", Nome: "Polimento"},
		}, nil)
		m.paymentRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)
		m.receivableRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Receivable{{ID: "rc-1"}}, nil)

		got, err := uc.FindOne(context.Background(), "comp-1", "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Service == nil || got.Items[0].Service.Nome != "Polimento" {
			t.Fatalf("expected resolved item service, got %+v", got.Items)
		}
		if len(got.Payments) != 1 || len(got.Receivables) != 1 {
			t.Fatalf("expected payments and receivables attached, got %+v", got)
		}
	})
}
