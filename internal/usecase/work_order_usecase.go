package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidClientID    = errors.New("invalid client_id")
	ErrInvalidVehicleID   = errors.New("invalid vehicle_id")
	ErrNoItems            = errors.New("work order requires at least one item")
	ErrInvalidItem        = errors.New("invalid work order item")
	ErrInvalidPayment     = errors.New("invalid payment")
	ErrInvalidStatus      = errors.New("invalid work order status")
	ErrClientNotFound     = errors.New("client not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrSequenceConflict   = errors.New("work order sequence allocation conflict")
)

// sequenceAttempts bounds the optimistic retries before the conflict is
// surfaced to the caller, who may retry the whole Create.
const sequenceAttempts = 3

// WorkOrderItemInput is one submitted service line. Optional fields follow
// the wire contract: quantidade defaults to 1, desconto/acrescimo to zero.
type WorkOrderItemInput struct {
	ServiceID     string
	PrecoUnitario decimal.Decimal
	Quantidade    *int
	Desconto      *decimal.Decimal
	Acrescimo     *decimal.Decimal
}

// PaymentInput is one submitted payment fact.
type PaymentInput struct {
	Metodo        entities.PaymentMethod
	Valor         decimal.Decimal
	DataPagamento *time.Time
	NumeroParcela *int
	TotalParcelas *int
}

type CreateWorkOrderInput struct {
	ClientID             string
	VehicleID            string
	Status               *entities.WorkOrderStatus
	FormaRecebimento     string
	AgendamentoID        string
	Items                []WorkOrderItemInput
	Payments             []PaymentInput
	ReceivableProjection *time.Time
}

type UpdateWorkOrderInput struct {
	Status           *entities.WorkOrderStatus
	FormaRecebimento *string
}

// IWorkOrderUseCase is the work-order transaction engine.
//
// Create persists the order, its items, any payments, the receivable for the
// unpaid remainder and post-sale follow-ups as one atomic unit: either the
// whole bundle commits or none of it is observable.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, companyID string, in CreateWorkOrderInput) (entities.WorkOrder, error)
	Update(ctx context.Context, companyID, id string, in UpdateWorkOrderInput) (entities.WorkOrder, error)
	FindAll(ctx context.Context, companyID string, status *entities.WorkOrderStatus) ([]entities.WorkOrder, error)
	FindOne(ctx context.Context, companyID, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo           interfaces.IWorkOrderRepository
	paymentRepo    interfaces.IPaymentRepository
	receivableRepo interfaces.IReceivableRepository
	clientRepo     interfaces.IClientRepository
	vehicleRepo    interfaces.IVehicleRepository
	serviceRepo    interfaces.IServiceRepository

	now func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	paymentRepo interfaces.IPaymentRepository,
	receivableRepo interfaces.IReceivableRepository,
	clientRepo interfaces.IClientRepository,
	vehicleRepo interfaces.IVehicleRepository,
	serviceRepo interfaces.IServiceRepository,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:           repo,
		paymentRepo:    paymentRepo,
		receivableRepo: receivableRepo,
		clientRepo:     clientRepo,
		vehicleRepo:    vehicleRepo,
		serviceRepo:    serviceRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, companyID string, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	log.Printf("[workorder][usecase] create start company_id=%s client_id=%s items=%d payments=%d", companyID, in.ClientID, len(in.Items), len(in.Payments))

	if in.ClientID == "" {
		return entities.WorkOrder{}, ErrInvalidClientID
	}
	if in.VehicleID == "" {
		return entities.WorkOrder{}, ErrInvalidVehicleID
	}
	if err := validateCreateInput(in); err != nil {
		log.Printf("[workorder][usecase] create rejected company_id=%s err=%v", companyID, err)
		return entities.WorkOrder{}, err
	}

	status := entities.WorkOrderStatusOrcamento
	if in.Status != nil {
		status = *in.Status
	}

	serviceByID, err := u.resolveReferences(ctx, companyID, in)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	totals := CalculateTotals(in.Items)
	totalPago := SumPayments(in.Payments)

	for attempt := 1; attempt <= sequenceAttempts; attempt++ {
		last, err := u.repo.LastSequence(ctx, companyID)
		if err != nil {
			return entities.WorkOrder{}, err
		}

		bundle := u.buildBundle(companyID, status, in, totals, totalPago, serviceByID, last)
		err = u.repo.CreateAtomic(ctx, bundle)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			log.Printf("[workorder][usecase] sequence conflict company_id=%s attempt=%d seq=%d", companyID, attempt, last+1)
			continue
		}
		if err != nil {
			log.Printf("[workorder][usecase] create failed company_id=%s err=%v", companyID, err)
			return entities.WorkOrder{}, err
		}

		order := assembleBundle(bundle, serviceByID)
		log.Printf("[workorder][usecase] create success company_id=%s work_order_id=%s seq=%d total_liquido=%s", companyID, order.ID, order.NumeroSequencial, order.TotalLiquido)
		return order, nil
	}

	return entities.WorkOrder{}, ErrSequenceConflict
}

func validateCreateInput(in CreateWorkOrderInput) error {
	if len(in.Items) == 0 {
		return ErrNoItems
	}
	if in.Status != nil && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ServiceID) == "" {
			return ErrInvalidItem
		}
		if it.PrecoUnitario.IsNegative() {
			return ErrInvalidItem
		}
		if it.Quantidade != nil && *it.Quantidade < 0 {
			return ErrInvalidItem
		}
		if it.Desconto != nil && it.Desconto.IsNegative() {
			return ErrInvalidItem
		}
		if it.Acrescimo != nil && it.Acrescimo.IsNegative() {
			return ErrInvalidItem
		}
	}
	for _, p := range in.Payments {
		if !p.Metodo.Valid() {
			return ErrInvalidPayment
		}
		if !p.Valor.IsPositive() {
			return ErrInvalidPayment
		}
	}
	return nil
}

// resolveReferences confirms client, vehicle and every referenced service
// belong to the company before any write begins.
func (u *WorkOrderUseCase) resolveReferences(ctx context.Context, companyID string, in CreateWorkOrderInput) (map[string]entities.Service, error) {
	client, err := u.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, ErrClientNotFound
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, companyID, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.ID == "" {
		return nil, ErrVehicleNotFound
	}

	ids := make([]string, 0, len(in.Items))
	seen := make(map[string]bool, len(in.Items))
	for _, it := range in.Items {
		if !seen[it.ServiceID] {
			seen[it.ServiceID] = true
			ids = append(ids, it.ServiceID)
		}
	}
	services, err := u.serviceRepo.ListByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, ErrServiceNotFound
		}
	}
	return byID, nil
}

func (u *WorkOrderUseCase) buildBundle(
	companyID string,
	status entities.WorkOrderStatus,
	in CreateWorkOrderInput,
	totals OrderTotals,
	totalPago decimal.Decimal,
	serviceByID map[string]entities.Service,
	lastSequence int64,
) entities.WorkOrderBundle {
	now := u.now()
	order := entities.WorkOrder{
		ID:               uuid.NewString(),
		CompanyID:        companyID,
		NumeroSequencial: lastSequence + 1,
		ClientID:         in.ClientID,
		VehicleID:        in.VehicleID,
		Status:           status,
		TotalBruto:       totals.TotalBruto,
		DescontoTotal:    totals.DescontoTotal,
		AcrescimoTotal:   totals.AcrescimoTotal,
		TotalLiquido:     totals.TotalLiquido,
		FormaRecebimento: in.FormaRecebimento,
		AgendamentoID:    in.AgendamentoID,
		DataAbertura:     now,
	}

	items := make([]entities.WorkOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		qty := 1
		if it.Quantidade != nil {
			qty = *it.Quantidade
		}
		desconto := decimal.Zero
		if it.Desconto != nil {
			desconto = *it.Desconto
		}
		acrescimo := decimal.Zero
		if it.Acrescimo != nil {
			acrescimo = *it.Acrescimo
		}
		items = append(items, entities.WorkOrderItem{
			ID:            uuid.NewString(),
			WorkOrderID:   order.ID,
			ServiceID:     it.ServiceID,
			Quantidade:    qty,
			PrecoUnitario: it.PrecoUnitario,
			Desconto:      desconto,
			Acrescimo:     acrescimo,
		})
	}

	payments := make([]entities.Payment, 0, len(in.Payments))
	for _, p := range in.Payments {
		paidAt := now
		if p.DataPagamento != nil {
			paidAt = *p.DataPagamento
		}
		payments = append(payments, entities.Payment{
			ID:            uuid.NewString(),
			WorkOrderID:   order.ID,
			CompanyID:     companyID,
			Metodo:        p.Metodo,
			Valor:         p.Valor,
			DataPagamento: paidAt,
			NumeroParcela: p.NumeroParcela,
			TotalParcelas: p.TotalParcelas,
		})
	}

	receivable := BuildReceivable(companyID, in.ClientID, order.ID, totals.TotalLiquido, totalPago, in.ReceivableProjection, now)

	referenced := make([]entities.Service, 0, len(items))
	for _, it := range items {
		referenced = append(referenced, serviceByID[it.ServiceID])
	}
	followUps := BuildFollowUps(companyID, order.ID, in.ClientID, referenced, now)

	return entities.WorkOrderBundle{
		Order:        order,
		Items:        items,
		Payments:     payments,
		Receivable:   receivable,
		FollowUps:    followUps,
		PrevSequence: lastSequence,
	}
}

// assembleBundle shapes the committed bundle into the populated order the
// caller receives, without re-reading the store.
func assembleBundle(b entities.WorkOrderBundle, serviceByID map[string]entities.Service) entities.WorkOrder {
	order := b.Order
	order.Items = make([]entities.WorkOrderItem, len(b.Items))
	for i, it := range b.Items {
		if s, ok := serviceByID[it.ServiceID]; ok {
			svc := s
			it.Service = &svc
		}
		order.Items[i] = it
	}
	order.Payments = b.Payments
	if b.Receivable != nil {
		order.Receivables = []entities.Receivable{*b.Receivable}
	}
	return order
}

func (u *WorkOrderUseCase) Update(ctx context.Context, companyID, id string, in UpdateWorkOrderInput) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if in.Status != nil && !in.Status.Valid() {
		return entities.WorkOrder{}, ErrInvalidStatus
	}

	// DataConclusao is stamped only on a transition to CONCLUIDO and never
	// cleared afterwards.
	var dataConclusao *time.Time
	if in.Status != nil && *in.Status == entities.WorkOrderStatusConcluido {
		t := u.now()
		dataConclusao = &t
	}

	updated, err := u.repo.UpdateMutable(ctx, companyID, id, in.Status, in.FormaRecebimento, dataConclusao)
	if err != nil {
		log.Printf("[workorder][usecase] update failed company_id=%s work_order_id=%s err=%v", companyID, id, err)
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.Printf("[workorder][usecase] update success company_id=%s work_order_id=%s status=%s", companyID, id, updated.Status)
	return updated, nil
}

func (u *WorkOrderUseCase) FindAll(ctx context.Context, companyID string, status *entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := u.repo.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if err := u.attachRelations(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (u *WorkOrderUseCase) FindOne(ctx context.Context, companyID, id string) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	order, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if err := u.attachRelations(ctx, &order); err != nil {
		return entities.WorkOrder{}, err
	}
	return order, nil
}

func (u *WorkOrderUseCase) attachRelations(ctx context.Context, order *entities.WorkOrder) error {
	items, err := u.repo.ListItemsByWorkOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.ServiceID] {
			seen[it.ServiceID] = true
			ids = append(ids, it.ServiceID)
		}
	}
	if len(ids) > 0 {
		services, err := u.serviceRepo.ListByIDs(ctx, order.CompanyID, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]entities.Service, len(services))
		for _, s := range services {
			byID[s.ID] = s
		}
		for i := range items {
			if s, ok := byID[items[i].ServiceID]; ok {
				svc := s
				items[i].Service = &svc
			}
		}
	}
	order.Items = items

	payments, err := u.paymentRepo.ListByWorkOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Payments = payments

	receivables, err := u.receivableRepo.ListByWorkOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Receivables = receivables
	return nil
}
