package usecase

import (
	"testing"
	"time"

	"gestauto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func TestCalculateTotals(t *testing.T) {
	t.Run("quantidade defaults to 1 and optionals to zero", func(t *testing.T) {
		totals := CalculateTotals([]WorkOrderItemInput{
			{ServiceID: "s-1", PrecoUnitario: dec("50.00")},
		})

		if !totals.TotalBruto.Equal(dec("50.00")) {
			t.Fatalf("expected bruto 50.00, got %s", totals.TotalBruto)
		}
		if !totals.TotalLiquido.Equal(dec("50.00")) {
			t.Fatalf("expected liquido 50.00, got %s", totals.TotalLiquido)
		}
	})

	t.Run("desconto and acrescimo are order level adjustments", func(t *testing.T) {
		totals := CalculateTotals([]WorkOrderItemInput{
			{ServiceID: "s-1", PrecoUnitario: dec("30.00"), Quantidade: intPtr(2), Desconto: decPtr("5.00")},
			{ServiceID: "s-2", PrecoUnitario: dec("45.50"), Acrescimo: decPtr("2.50")},
		})

		if !totals.TotalBruto.Equal(dec("105.50")) {
			t.Fatalf("expected bruto 105.50, got %s", totals.TotalBruto)
		}
		if !totals.DescontoTotal.Equal(dec("5.00")) {
			t.Fatalf("expected desconto 5.00, got %s", totals.DescontoTotal)
		}
		if !totals.AcrescimoTotal.Equal(dec("2.50")) {
			t.Fatalf("expected acrescimo 2.50, got %s", totals.AcrescimoTotal)
		}
		if !totals.TotalLiquido.Equal(dec("103.00")) {
			t.Fatalf("expected liquido 103.00, got %s", totals.TotalLiquido)
		}
	})

	t.Run("cents survive exactly", func(t *testing.T) {
		// 0.1 + 0.2 style additions must not drift.
		totals := CalculateTotals([]WorkOrderItemInput{
			{ServiceID: "s-1", PrecoUnitario: dec("0.10")},
			{ServiceID: "s-2", PrecoUnitario: dec("0.20")},
		})

		if totals.TotalLiquido.String() != "0.3" {
			t.Fatalf("expected exactly 0.3, got %s", totals.TotalLiquido)
		}
	})

	t.Run("negative liquido is returned as computed", func(t *testing.T) {
		totals := CalculateTotals([]WorkOrderItemInput{
			{ServiceID: "s-1", PrecoUnitario: dec("10.00"), Desconto: decPtr("25.00")},
		})

		if !totals.TotalLiquido.Equal(dec("-15.00")) {
			t.Fatalf("expected liquido -15.00, got %s", totals.TotalLiquido)
		}
	})
}

func TestBuildReceivable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("partial payment opens the remainder", func(t *testing.T) {
		rc := BuildReceivable("comp-1", "cli-1", "wo-1", dec("100.00"), dec("60.00"), nil, now)

		if rc == nil {
			t.Fatal("expected a receivable")
		}
		if !rc.ValorPrevisto.Equal(dec("40.00")) {
			t.Fatalf("expected valor 40.00, got %s", rc.ValorPrevisto)
		}
		if rc.Status != entities.ReceivableStatusAberto {
			t.Fatalf("expected status aberto, got %s", rc.Status)
		}
		if !rc.DataPrevista.Equal(now) {
			t.Fatalf("expected due at creation instant, got %s", rc.DataPrevista)
		}
	})

	t.Run("projection date wins when present", func(t *testing.T) {
		due := now.AddDate(0, 1, 0)
		rc := BuildReceivable("comp-1", "cli-1", "wo-1", dec("100.00"), dec("0"), &due, now)

		if rc == nil {
			t.Fatal("expected a receivable")
		}
		if !rc.DataPrevista.Equal(due) {
			t.Fatalf("expected due %s, got %s", due, rc.DataPrevista)
		}
	})

	t.Run("fully paid yields none", func(t *testing.T) {
		if rc := BuildReceivable("comp-1", "cli-1", "wo-1", dec("100.00"), dec("100.00"), nil, now); rc != nil {
			t.Fatalf("expected nil receivable, got %+v", rc)
		}
	})

	t.Run("overpaid yields none", func(t *testing.T) {
		if rc := BuildReceivable("comp-1", "cli-1", "wo-1", dec("100.00"), dec("150.00"), nil, now); rc != nil {
			t.Fatalf("expected nil receivable, got %+v", rc)
		}
	})
}

func TestBuildFollowUps(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("one per distinct flagged service", func(t *testing.T) {
		flagged := entities.Service{ID: "svc-1", GeraPosVenda: true, DiasFollowUp: intPtr(7)}
		plain := entities.Service{ID: "svc-2"}
		noDelay := entities.Service{ID: "svc-3", GeraPosVenda: true}

		// svc-1 appears twice: line item repetition must not duplicate.
		out := BuildFollowUps("comp-1", "wo-1", "cli-1", []entities.Service{flagged, plain, flagged, noDelay}, now)

		if len(out) != 1 {
			t.Fatalf("expected 1 follow-up, got %d", len(out))
		}
		f := out[0]
		if f.ServiceID != "svc-1" {
			t.Fatalf("expected svc-1, got %s", f.ServiceID)
		}
		if f.Status != entities.FollowUpStatusPendente {
			t.Fatalf("expected PENDENTE, got %s", f.Status)
		}
		want := now.AddDate(0, 0, 7)
		if !f.DataContato.Equal(want) {
			t.Fatalf("expected contact at %s, got %s", want, f.DataContato)
		}
	})

	t.Run("no flagged services yields none", func(t *testing.T) {
		out := BuildFollowUps("comp-1", "wo-1", "cli-1", []entities.Service{{ID: "svc-2"}}, now)
		if len(out) != 0 {
			t.Fatalf("expected none, got %d", len(out))
		}
	})
}

func TestWindows(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	day := DayWindow(now)
	if !day.Contains(now) {
		t.Fatal("day window must contain now")
	}
	if day.Contains(now.AddDate(0, 0, -1)) {
		t.Fatal("day window must not contain yesterday")
	}
	if !day.Contains(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("day window must contain midnight")
	}

	month := MonthWindow(now)
	if !month.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("month window must contain the 1st")
	}
	if !month.Contains(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatal("month window must contain the last day")
	}
	if month.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("month window must not contain next month")
	}
}
