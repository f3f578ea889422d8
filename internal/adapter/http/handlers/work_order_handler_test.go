package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestauto/internal/adapter/http/handlers/mocks"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func workOrderTestRouter(h *WorkOrderHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextCompanyID, "comp-1")
	})
	r.POST("/v1/work-orders", h.Create)
	r.GET("/v1/work-orders", h.FindAll)
	r.GET("/v1/work-orders/:id", h.FindOne)
	r.PATCH("/v1/work-orders/:id", h.Update)
	return r
}

func TestWorkOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"client_id":"cli-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "comp-1", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrClientNotFound)

		body := `{"client_id":"cli-x","vehicle_id":"veh-1","items":[{"service_id":"svc-1","preco_unitario":"50.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("sequence conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "comp-1", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrSequenceConflict)

		body := `{"client_id":"cli-1","vehicle_id":"veh-1","items":[{"service_id":"svc-1","preco_unitario":"50.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "comp-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, companyID string, in usecase.CreateWorkOrderInput) (entities.WorkOrder, error) {
				if in.ClientID != "cli-1" || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.WorkOrder{
					ID:               "wo-1",
					CompanyID:        companyID,
					NumeroSequencial: 42,
					ClientID:         in.ClientID,
					VehicleID:        in.VehicleID,
					Status:           entities.WorkOrderStatusOrcamento,
					TotalLiquido:     decimal.RequireFromString("50.00"),
					DataAbertura:     now,
				}, nil
			})

		body := `{"client_id":"cli-1","vehicle_id":"veh-1","items":[{"service_id":"svc-1","preco_unitario":"50.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "wo-1" {
			t.Fatalf("expected id wo-1, got %v", resp["id"])
		}
		if resp["numero_sequencial"] != float64(42) {
			t.Fatalf("expected numero_sequencial 42, got %v", resp["numero_sequencial"])
		}
	})
}

func TestWorkOrderHandler_FindAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().FindAll(gomock.Any(), "comp-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, status *entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
				if status == nil || *status != entities.WorkOrderStatusAberto {
					t.Fatalf("expected ABERTO filter, got %v", status)
				}
				return []entities.WorkOrder{{ID: "wo-1"}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders?status=ABERTO", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().FindAll(gomock.Any(), "comp-1", gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_FindOne(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().FindOne(gomock.Any(), "comp-1", "wo-x").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().FindOne(gomock.Any(), "comp-1", "wo-1").Return(entities.WorkOrder{ID: "wo-1", NumeroSequencial: 7}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/wo-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "comp-1", "wo-1", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/wo-1", bytes.NewBufferString(`{"status":"FINALIZADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := workOrderTestRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "comp-1", "wo-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _, id string, in usecase.UpdateWorkOrderInput) (entities.WorkOrder, error) {
				if in.Status == nil || *in.Status != entities.WorkOrderStatusConcluido {
					t.Fatalf("expected CONCLUIDO, got %v", in.Status)
				}
				return entities.WorkOrder{ID: id, Status: *in.Status}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/wo-1", bytes.NewBufferString(`{"status":"CONCLUIDO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
