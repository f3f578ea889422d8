package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestauto/internal/adapter/http/handlers/mocks"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dashboardTestRouter(h *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextCompanyID, "comp-1")
		c.Set(middleware.ContextUserID, "usr-1")
		c.Set(middleware.ContextRole, "admin")
		c.Set(middleware.ContextUserName, "Ana")
	})
	r.GET("/v1/dashboard/overview", h.Overview)
	return r
}

func TestDashboardHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success carries tenant and user from context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := dashboardTestRouter(NewDashboardHandler(uc))

		uc.EXPECT().GetOverview(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.DashboardInput) (entities.DashboardOverview, error) {
				if in.CompanyID != "comp-1" || in.UserID != "usr-1" || in.Role != "admin" || in.UserName != "Ana" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Now.IsZero() {
					t.Fatal("expected a non-zero instant")
				}
				return entities.DashboardOverview{
					User: entities.DashboardUser{ID: in.UserID, Nome: in.UserName, Role: in.Role},
					Vendas: entities.DashboardVendas{
						TotalPagoMes: decimal.RequireFromString("80.00"),
						PorMetodo: map[entities.PaymentMethod]decimal.Decimal{
							entities.PaymentMethodPix: decimal.RequireFromString("80.00"),
						},
					},
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		vendas, ok := resp["vendas"].(map[string]interface{})
		if !ok {
			t.Fatalf("missing vendas block: %v", resp)
		}
		if vendas["total_pago_mes"] != "80" {
			t.Fatalf("expected total_pago_mes 80, got %v", vendas["total_pago_mes"])
		}
	})

	t.Run("invalid tenant maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := dashboardTestRouter(NewDashboardHandler(uc))

		uc.EXPECT().GetOverview(gomock.Any(), gomock.Any()).Return(entities.DashboardOverview{}, usecase.ErrInvalidCompanyID)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("aggregation error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := dashboardTestRouter(NewDashboardHandler(uc))

		uc.EXPECT().GetOverview(gomock.Any(), gomock.Any()).Return(entities.DashboardOverview{}, errors.New("throttled"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
