package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gestauto/internal/adapter/http/dto/response"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/usecase"
	"gestauto/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated overview.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Overview computes the financial/operational snapshot for the tenant. All
// windows derive from a single instant captured here.
func (h *DashboardHandler) Overview(c *gin.Context) {
	in := usecase.DashboardInput{
		CompanyID: middleware.CompanyID(c),
		UserID:    c.GetString(middleware.ContextUserID),
		Role:      c.GetString(middleware.ContextRole),
		UserName:  c.GetString(middleware.ContextUserName),
		Now:       time.Now().UTC(),
	}

	overview, err := h.usecase.GetOverview(c.Request.Context(), in)
	if err != nil {
		log.Printf("[dashboard][handler] overview failed company_id=%s err=%v", in.CompanyID, err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardOverview(overview))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
