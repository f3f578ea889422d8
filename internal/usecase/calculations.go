package usecase

import (
	"time"

	"gestauto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pure computation feeding the work-order transaction. Nothing here writes;
// the engine collects the results into one bundle so rollback stays trivial.

// OrderTotals is the monetary summary of a line-item list.
type OrderTotals struct {
	TotalBruto     decimal.Decimal
	DescontoTotal  decimal.Decimal
	AcrescimoTotal decimal.Decimal
	TotalLiquido   decimal.Decimal
}

// CalculateTotals sums line items into order totals:
//
//	totalBruto     = sum(precoUnitario * quantidade), quantidade defaulting to 1
//	descontoTotal  = sum(desconto)
//	acrescimoTotal = sum(acrescimo)
//	totalLiquido   = totalBruto - descontoTotal + acrescimoTotal
//
// A negative totalLiquido is returned as computed; callers that consider it
// invalid must reject it upstream.
func CalculateTotals(items []WorkOrderItemInput) OrderTotals {
	bruto := decimal.Zero
	desconto := decimal.Zero
	acrescimo := decimal.Zero
	for _, it := range items {
		qty := int64(1)
		if it.Quantidade != nil {
			qty = int64(*it.Quantidade)
		}
		bruto = bruto.Add(it.PrecoUnitario.Mul(decimal.NewFromInt(qty)))
		if it.Desconto != nil {
			desconto = desconto.Add(*it.Desconto)
		}
		if it.Acrescimo != nil {
			acrescimo = acrescimo.Add(*it.Acrescimo)
		}
	}
	return OrderTotals{
		TotalBruto:     bruto,
		DescontoTotal:  desconto,
		AcrescimoTotal: acrescimo,
		TotalLiquido:   bruto.Sub(desconto).Add(acrescimo),
	}
}

// SumPayments totals the submitted payment amounts. No check against the
// order total happens here: zero payments and overpayment are both accepted.
func SumPayments(payments []PaymentInput) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Valor)
	}
	return total
}

// BuildReceivable returns the single receivable for the unpaid remainder, or
// nil when the order is fully paid. Without a projection date the receivable
// falls due at the creation instant (kept as the source system behaves).
func BuildReceivable(companyID, clientID, workOrderID string, totalLiquido, totalPago decimal.Decimal, projection *time.Time, now time.Time) *entities.Receivable {
	if totalPago.GreaterThanOrEqual(totalLiquido) {
		return nil
	}
	due := now
	if projection != nil {
		due = *projection
	}
	return &entities.Receivable{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		ClientID:      clientID,
		WorkOrderID:   workOrderID,
		ValorPrevisto: totalLiquido.Sub(totalPago),
		DataPrevista:  due,
		Status:        entities.ReceivableStatusAberto,
	}
}

// BuildFollowUps schedules one PENDENTE follow-up per distinct service that
// has geraPosVenda and a configured delay. Services repeated across line
// items yield a single follow-up.
func BuildFollowUps(companyID, workOrderID, clientID string, services []entities.Service, now time.Time) []entities.FollowUp {
	seen := make(map[string]bool, len(services))
	var out []entities.FollowUp
	for _, s := range services {
		if !s.GeraPosVenda || s.DiasFollowUp == nil || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, entities.FollowUp{
			ID:          uuid.NewString(),
			CompanyID:   companyID,
			WorkOrderID: workOrderID,
			ClientID:    clientID,
			ServiceID:   s.ID,
			DataContato: now.AddDate(0, 0, *s.DiasFollowUp),
			Status:      entities.FollowUpStatusPendente,
			UpdatedAt:   now,
		})
	}
	return out
}

// Period is a closed [Start, End] time window.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// DayWindow is the local calendar day around now.
func DayWindow(now time.Time) Period {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// MonthWindow is the local calendar month around now.
func MonthWindow(now time.Time) Period {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}
