package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestauto/internal/domain/entities"
	mock_interfaces "gestauto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	companyRepo    *mock_interfaces.MockICompanyRepository
	paymentRepo    *mock_interfaces.MockIPaymentRepository
	receivableRepo *mock_interfaces.MockIReceivableRepository
	workOrderRepo  *mock_interfaces.MockIWorkOrderRepository
	clientRepo     *mock_interfaces.MockIClientRepository
	spaceRepo      *mock_interfaces.MockISpaceRepository
	allocationRepo *mock_interfaces.MockISpaceAllocationRepository
	followUpRepo   *mock_interfaces.MockIFollowUpRepository
}

func newDashboardUseCaseForTest(ctrl *gomock.Controller) (*DashboardUseCase, dashboardMocks) {
	m := dashboardMocks{
		companyRepo:    mock_interfaces.NewMockICompanyRepository(ctrl),
		paymentRepo:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		receivableRepo: mock_interfaces.NewMockIReceivableRepository(ctrl),
		workOrderRepo:  mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		clientRepo:     mock_interfaces.NewMockIClientRepository(ctrl),
		spaceRepo:      mock_interfaces.NewMockISpaceRepository(ctrl),
		allocationRepo: mock_interfaces.NewMockISpaceAllocationRepository(ctrl),
		followUpRepo:   mock_interfaces.NewMockIFollowUpRepository(ctrl),
	}
	uc := NewDashboardUseCase(m.companyRepo, m.paymentRepo, m.receivableRepo, m.workOrderRepo, m.clientRepo, m.spaceRepo, m.allocationRepo, m.followUpRepo)
	return uc, m
}

func TestDashboardUseCase_GetOverview(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	input := DashboardInput{CompanyID: "comp-1", UserID: "usr-1", Role: "admin", UserName: "Ana", Now: now}

	t.Run("missing company id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newDashboardUseCaseForTest(ctrl)

		_, err := uc.GetOverview(context.Background(), DashboardInput{CompanyID: " "})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("aggregates every block from one instant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCaseForTest(ctrl)

		day := DayWindow(now)
		month := MonthWindow(now)

		m.companyRepo.EXPECT().GetByID(gomock.Any(), "comp-1").Return(entities.Company{ID: "comp-1", NomeFantasia: "Lava Jato Central"}, nil)

		// Month payments: 50 PIX today + 30 CREDITO earlier this month.
		m.paymentRepo.EXPECT().ListByPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return([]entities.Payment{
			{ID: "pay-1", WorkOrderID: "wo-1", Metodo: entities.PaymentMethodPix, Valor: dec("50.00"), DataPagamento: now},
			{ID: "pay-2", WorkOrderID: "wo-2", Metodo: entities.PaymentMethodCredito, Valor: dec("30.00"), DataPagamento: now.AddDate(0, 0, -3)},
		}, nil)

		// One receivable settled today for 10.
		m.receivableRepo.EXPECT().ListPaidInPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return([]entities.Receivable{
			{ID: "rc-1", Status: entities.ReceivableStatusPago, ValorPago: decPtr("10.00"), DataPagamento: &now},
		}, nil)

		m.workOrderRepo.EXPECT().ListRefsByPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return([]entities.WorkOrderRef{
			{ID: "wo-1", ClientID: "cli-1", Status: entities.WorkOrderStatusConcluido},
			{ID: "wo-2", ClientID: "cli-2", Status: entities.WorkOrderStatusAberto},
			{ID: "wo-3", ClientID: "cli-1", Status: entities.WorkOrderStatusOrcamento},
		}, nil)

		m.workOrderRepo.EXPECT().ListRefsByIDs(gomock.Any(), "comp-1", gomock.Any()).Return([]entities.WorkOrderRef{
			{ID: "wo-1", ClientID: "cli-1"},
			{ID: "wo-2", ClientID: "cli-2"},
		}, nil)
		m.clientRepo.EXPECT().ListByIDs(gomock.Any(), "comp-1", gomock.Any()).Return([]entities.Client{
			{ID: "cli-1", NomeCompleto: "Maria"},
		}, nil)

		m.spaceRepo.EXPECT().CountByCompany(gomock.Any(), "comp-1").Return(8, nil)
		m.allocationRepo.EXPECT().CountOccupiedAt(gomock.Any(), "comp-1", now).Return(3, nil)
		m.allocationRepo.EXPECT().CountEndingBetween(gomock.Any(), "comp-1", day.Start, day.End).Return(2, nil)

		m.followUpRepo.EXPECT().CountPendingByContactPeriod(gomock.Any(), "comp-1", day.Start, day.End).Return(4, nil)
		m.followUpRepo.EXPECT().CountDoneByUpdatedPeriod(gomock.Any(), "comp-1", day.Start, day.End).Return(1, nil)

		overview, err := uc.GetOverview(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if overview.User.Nome != "Ana" || overview.Company.NomeFantasia != "Lava Jato Central" {
			t.Fatalf("unexpected header: %+v %+v", overview.User, overview.Company)
		}
		if !overview.Vendas.TotalPagoMes.Equal(dec("80.00")) {
			t.Fatalf("expected total 80.00, got %s", overview.Vendas.TotalPagoMes)
		}
		if len(overview.Vendas.PorMetodo) != len(entities.PaymentMethods()) {
			t.Fatalf("expected all method buckets, got %d", len(overview.Vendas.PorMetodo))
		}
		if !overview.Vendas.PorMetodo[entities.PaymentMethodPix].Equal(dec("50.00")) {
			t.Fatalf("expected PIX 50.00, got %s", overview.Vendas.PorMetodo[entities.PaymentMethodPix])
		}
		if !overview.Vendas.PorMetodo[entities.PaymentMethodDinheiro].IsZero() {
			t.Fatalf("expected zero-filled DINHEIRO, got %s", overview.Vendas.PorMetodo[entities.PaymentMethodDinheiro])
		}
		if !overview.Financeiro.EntradasHoje.Equal(dec("50.00")) {
			t.Fatalf("expected entradas 50.00, got %s", overview.Financeiro.EntradasHoje)
		}
		if !overview.Financeiro.SaidasHoje.Equal(dec("10.00")) {
			t.Fatalf("expected saidas 10.00, got %s", overview.Financeiro.SaidasHoje)
		}
		if !overview.Financeiro.SaldoEstimado.Equal(dec("70.00")) {
			t.Fatalf("expected saldo 70.00, got %s", overview.Financeiro.SaldoEstimado)
		}
		if !overview.Financeiro.TotalFaturasCartao.Equal(dec("30.00")) {
			t.Fatalf("expected faturas 30.00, got %s", overview.Financeiro.TotalFaturasCartao)
		}
		if overview.Orcamentos.OrcPendentes != 1 || overview.Orcamentos.OrcAprovados != 2 {
			t.Fatalf("unexpected orcamentos: %+v", overview.Orcamentos)
		}
		if overview.Vagas.TotalVagas != 8 || overview.Vagas.VagasOcupadasAgora != 3 || overview.Vagas.VagasConcluidasHoje != 2 {
			t.Fatalf("unexpected vagas: %+v", overview.Vagas)
		}
		if overview.PosVenda.ContatosPendentesHoje != 4 || overview.PosVenda.PosVendasRealizadasHoje != 1 {
			t.Fatalf("unexpected pos-venda: %+v", overview.PosVenda)
		}

		if len(overview.TopClientes) != 2 {
			t.Fatalf("expected 2 top clients, got %d", len(overview.TopClientes))
		}
		first, second := overview.TopClientes[0], overview.TopClientes[1]
		if first.ClientID != "cli-1" || !first.TotalGasto.Equal(dec("50.00")) || first.NomeCompleto != "Maria" {
			t.Fatalf("unexpected first client: %+v", first)
		}
		if first.QtdeServicos != 2 {
			t.Fatalf("expected 2 orders for cli-1, got %d", first.QtdeServicos)
		}
		if second.ClientID != "cli-2" || second.NomeCompleto != "Cliente" {
			t.Fatalf("expected name fallback for cli-2, got %+v", second)
		}
	})

	t.Run("unknown company renders placeholder header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCaseForTest(ctrl)

		day := DayWindow(now)
		month := MonthWindow(now)

		m.companyRepo.EXPECT().GetByID(gomock.Any(), "comp-1").Return(entities.Company{}, nil)
		m.paymentRepo.EXPECT().ListByPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return(nil, nil)
		m.receivableRepo.EXPECT().ListPaidInPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return(nil, nil)
		m.workOrderRepo.EXPECT().ListRefsByPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return(nil, nil)
		m.spaceRepo.EXPECT().CountByCompany(gomock.Any(), "comp-1").Return(0, nil)
		m.allocationRepo.EXPECT().CountOccupiedAt(gomock.Any(), "comp-1", now).Return(0, nil)
		m.allocationRepo.EXPECT().CountEndingBetween(gomock.Any(), "comp-1", day.Start, day.End).Return(0, nil)
		m.followUpRepo.EXPECT().CountPendingByContactPeriod(gomock.Any(), "comp-1", day.Start, day.End).Return(0, nil)
		m.followUpRepo.EXPECT().CountDoneByUpdatedPeriod(gomock.Any(), "comp-1", day.Start, day.End).Return(0, nil)

		overview, err := uc.GetOverview(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if overview.Company.NomeFantasia != "--" {
			t.Fatalf("expected placeholder company name, got %q", overview.Company.NomeFantasia)
		}
		if len(overview.TopClientes) != 0 {
			t.Fatalf("expected no top clients, got %+v", overview.TopClientes)
		}
		if !overview.Financeiro.SaldoEstimado.Equal(decimal.Zero) {
			t.Fatalf("expected zero saldo, got %s", overview.Financeiro.SaldoEstimado)
		}
	})

	t.Run("payments query error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCaseForTest(ctrl)

		month := MonthWindow(now)
		m.companyRepo.EXPECT().GetByID(gomock.Any(), "comp-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.paymentRepo.EXPECT().ListByPeriod(gomock.Any(), "comp-1", month.Start, month.End).Return(nil, errors.New("throttled"))

		if _, err := uc.GetOverview(context.Background(), input); err == nil {
			t.Fatal("expected error")
		}
	})
}
