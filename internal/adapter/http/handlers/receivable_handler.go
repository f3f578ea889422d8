package handlers

import (
	"errors"
	"log"
	"net/http"

	"gestauto/internal/adapter/http/dto/request"
	"gestauto/internal/adapter/http/dto/response"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase"
	"gestauto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReceivablePayload = pkg.NewDomainErrorSimple("INVALID_RECEIVABLE_INPUT", "Invalid receivable payload", http.StatusBadRequest)

// ReceivableHandler lists and settles contas a receber.

type ReceivableHandler struct {
	usecase usecase.IReceivableUseCase
}

func NewReceivableHandler(uc usecase.IReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc}
}

func (h *ReceivableHandler) FindAll(c *gin.Context) {
	var status *entities.ReceivableStatus
	if s := c.Query("status"); s != "" {
		v := entities.ReceivableStatus(s)
		status = &v
	}

	receivables, err := h.usecase.FindAll(c.Request.Context(), middleware.CompanyID(c), status)
	if err != nil {
		appErr := mapReceivableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceivables(receivables))
}

func (h *ReceivableHandler) Settle(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var payload request.ReceivableSettleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceivablePayload.HTTPStatus, errInvalidReceivablePayload.ToHTTPError())
		return
	}

	settled, err := h.usecase.Settle(c.Request.Context(), companyID, c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[receivable][handler] settle failed company_id=%s receivable_id=%s err=%v", companyID, c.Param("id"), err)
		appErr := mapReceivableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceivable(settled))
}

func mapReceivableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidReceivableStatus),
		errors.Is(err, usecase.ErrInvalidSettleValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Receivable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
