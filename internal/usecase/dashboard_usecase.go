package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrInvalidCompanyID = errors.New("invalid company_id")

// DashboardInput identifies the tenant, the acting user (display only) and
// the single instant every window is derived from. Callers set Now once per
// request so the sub-aggregations cannot drift against each other.
type DashboardInput struct {
	CompanyID string
	UserID    string
	Role      string
	UserName  string
	Now       time.Time
}

type IDashboardUseCase interface {
	GetOverview(ctx context.Context, in DashboardInput) (entities.DashboardOverview, error)
}

// DashboardUseCase computes the read-only financial/operational snapshot.
// It owns no state and takes no locks: each call queries the month/day
// windows and aggregates in memory.

type DashboardUseCase struct {
	companyRepo    interfaces.ICompanyRepository
	paymentRepo    interfaces.IPaymentRepository
	receivableRepo interfaces.IReceivableRepository
	workOrderRepo  interfaces.IWorkOrderRepository
	clientRepo     interfaces.IClientRepository
	spaceRepo      interfaces.ISpaceRepository
	allocationRepo interfaces.ISpaceAllocationRepository
	followUpRepo   interfaces.IFollowUpRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	companyRepo interfaces.ICompanyRepository,
	paymentRepo interfaces.IPaymentRepository,
	receivableRepo interfaces.IReceivableRepository,
	workOrderRepo interfaces.IWorkOrderRepository,
	clientRepo interfaces.IClientRepository,
	spaceRepo interfaces.ISpaceRepository,
	allocationRepo interfaces.ISpaceAllocationRepository,
	followUpRepo interfaces.IFollowUpRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		companyRepo:    companyRepo,
		paymentRepo:    paymentRepo,
		receivableRepo: receivableRepo,
		workOrderRepo:  workOrderRepo,
		clientRepo:     clientRepo,
		spaceRepo:      spaceRepo,
		allocationRepo: allocationRepo,
		followUpRepo:   followUpRepo,
	}
}

func (u *DashboardUseCase) GetOverview(ctx context.Context, in DashboardInput) (entities.DashboardOverview, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.DashboardOverview{}, ErrInvalidCompanyID
	}
	if in.Now.IsZero() {
		in.Now = time.Now().UTC()
	}
	day := DayWindow(in.Now)
	month := MonthWindow(in.Now)
	log.Printf("[dashboard][usecase] overview start company_id=%s day=%s month=%s", in.CompanyID, day.Start.Format("2006-01-02"), month.Start.Format("2006-01"))

	overview := entities.DashboardOverview{
		User: entities.DashboardUser{ID: in.UserID, Nome: in.UserName, Role: in.Role},
	}

	company, err := u.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	overview.Company = entities.DashboardCompany{
		ID:           in.CompanyID,
		NomeFantasia: company.NomeFantasia,
		Plano:        company.Plano,
		CreatedAt:    company.CreatedAt,
	}
	if company.ID == "" {
		overview.Company.NomeFantasia = "--"
	}

	payments, err := u.paymentRepo.ListByPeriod(ctx, in.CompanyID, month.Start, month.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	vendas, financeiro := aggregateFinance(payments, day)
	overview.Vendas = vendas
	overview.Financeiro = financeiro

	settled, err := u.receivableRepo.ListPaidInPeriod(ctx, in.CompanyID, month.Start, month.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	saidasMes := decimal.Zero
	for _, r := range settled {
		if r.ValorPago == nil {
			continue
		}
		saidasMes = saidasMes.Add(*r.ValorPago)
		if r.DataPagamento != nil && day.Contains(*r.DataPagamento) {
			overview.Financeiro.SaidasHoje = overview.Financeiro.SaidasHoje.Add(*r.ValorPago)
		}
	}
	overview.Financeiro.SaldoEstimado = overview.Vendas.TotalPagoMes.Sub(saidasMes)

	refs, err := u.workOrderRepo.ListRefsByPeriod(ctx, in.CompanyID, month.Start, month.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	ordersByClient := make(map[string]int)
	for _, ref := range refs {
		ordersByClient[ref.ClientID]++
		switch ref.Status {
		case entities.WorkOrderStatusOrcamento:
			overview.Orcamentos.OrcPendentes++
		case entities.WorkOrderStatusAberto, entities.WorkOrderStatusEmExecucao, entities.WorkOrderStatusConcluido:
			overview.Orcamentos.OrcAprovados++
		}
	}

	topClientes, err := u.topClients(ctx, in.CompanyID, payments, ordersByClient)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	overview.TopClientes = topClientes

	totalVagas, err := u.spaceRepo.CountByCompany(ctx, in.CompanyID)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	ocupadas, err := u.allocationRepo.CountOccupiedAt(ctx, in.CompanyID, in.Now)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	concluidasHoje, err := u.allocationRepo.CountEndingBetween(ctx, in.CompanyID, day.Start, day.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	overview.Vagas = entities.DashboardVagas{
		TotalVagas:          totalVagas,
		VagasOcupadasAgora:  ocupadas,
		VagasConcluidasHoje: concluidasHoje,
	}

	pendentes, err := u.followUpRepo.CountPendingByContactPeriod(ctx, in.CompanyID, day.Start, day.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	realizadas, err := u.followUpRepo.CountDoneByUpdatedPeriod(ctx, in.CompanyID, day.Start, day.End)
	if err != nil {
		return entities.DashboardOverview{}, err
	}
	overview.PosVenda = entities.DashboardPosVenda{
		ContatosPendentesHoje:   pendentes,
		PosVendasRealizadasHoje: realizadas,
	}

	log.Printf("[dashboard][usecase] overview success company_id=%s total_pago_mes=%s", in.CompanyID, overview.Vendas.TotalPagoMes)
	return overview, nil
}

// aggregateFinance folds the month's payments into the sales buckets and the
// today/card figures. All six method buckets are always present.
func aggregateFinance(payments []entities.Payment, day Period) (entities.DashboardVendas, entities.DashboardFinanceiro) {
	porMetodo := make(map[entities.PaymentMethod]decimal.Decimal, 6)
	for _, m := range entities.PaymentMethods() {
		porMetodo[m] = decimal.Zero
	}

	total := decimal.Zero
	entradasHoje := decimal.Zero
	faturasCartao := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Valor)
		if _, ok := porMetodo[p.Metodo]; ok {
			porMetodo[p.Metodo] = porMetodo[p.Metodo].Add(p.Valor)
		}
		if day.Contains(p.DataPagamento) {
			entradasHoje = entradasHoje.Add(p.Valor)
		}
		if p.Metodo == entities.PaymentMethodCredito {
			faturasCartao = faturasCartao.Add(p.Valor)
		}
	}

	vendas := entities.DashboardVendas{TotalPagoMes: total, PorMetodo: porMetodo}
	financeiro := entities.DashboardFinanceiro{
		EntradasHoje:       entradasHoje,
		SaidasHoje:         decimal.Zero,
		SaldoEstimado:      decimal.Zero,
		TotalFaturasCartao: faturasCartao,
	}
	return vendas, financeiro
}

// topClients ranks clients by month payment volume, joining payments to
// clients through their work orders. Order counts come from the independent
// opened-this-month aggregation, so a client can appear there without being
// ranked. Ties keep map iteration order.
func (u *DashboardUseCase) topClients(ctx context.Context, companyID string, payments []entities.Payment, ordersByClient map[string]int) ([]entities.DashboardTopClient, error) {
	byWorkOrder := make(map[string]decimal.Decimal)
	for _, p := range payments {
		byWorkOrder[p.WorkOrderID] = byWorkOrder[p.WorkOrderID].Add(p.Valor)
	}
	ids := make([]string, 0, len(byWorkOrder))
	for id, total := range byWorkOrder {
		if total.IsPositive() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []entities.DashboardTopClient{}, nil
	}

	refs, err := u.workOrderRepo.ListRefsByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	clientByOrder := make(map[string]string, len(refs))
	for _, ref := range refs {
		clientByOrder[ref.ID] = ref.ClientID
	}

	totals := make(map[string]decimal.Decimal)
	for _, id := range ids {
		clientID, ok := clientByOrder[id]
		if !ok {
			continue
		}
		totals[clientID] = totals[clientID].Add(byWorkOrder[id])
	}

	ranked := make([]string, 0, len(totals))
	for clientID := range totals {
		ranked = append(ranked, clientID)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]].GreaterThan(totals[ranked[j]])
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	clients, err := u.clientRepo.ListByIDs(ctx, companyID, ranked)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.NomeCompleto
	}

	top := make([]entities.DashboardTopClient, 0, len(ranked))
	for _, clientID := range ranked {
		nome := names[clientID]
		if nome == "" {
			nome = "Cliente"
		}
		top = append(top, entities.DashboardTopClient{
			ClientID:     clientID,
			NomeCompleto: nome,
			TotalGasto:   totals[clientID],
			QtdeServicos: ordersByClient[clientID],
		})
	}
	return top, nil
}
