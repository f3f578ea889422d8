package handlers

import (
	"errors"
	"net/http"

	"gestauto/internal/adapter/http/dto/request"
	"gestauto/internal/adapter/http/dto/response"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/usecase"
	"gestauto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSpacePayload = pkg.NewDomainErrorSimple("INVALID_SPACE_INPUT", "Invalid space payload", http.StatusBadRequest)

// SpaceHandler manages wash/work bays and their allocations.

type SpaceHandler struct {
	usecase usecase.ISpaceUseCase
}

func NewSpaceHandler(uc usecase.ISpaceUseCase) *SpaceHandler {
	return &SpaceHandler{usecase: uc}
}

func (h *SpaceHandler) Create(c *gin.Context) {
	var payload request.SpaceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSpacePayload.HTTPStatus, errInvalidSpacePayload.ToHTTPError())
		return
	}

	space, err := h.usecase.CreateSpace(c.Request.Context(), middleware.CompanyID(c), payload.Nome)
	if err != nil {
		appErr := mapSpaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSpace(space))
}

func (h *SpaceHandler) Allocate(c *gin.Context) {
	var payload request.SpaceAllocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSpacePayload.HTTPStatus, errInvalidSpacePayload.ToHTTPError())
		return
	}

	allocation, err := h.usecase.Allocate(c.Request.Context(), middleware.CompanyID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapSpaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSpaceAllocation(allocation))
}

func mapSpaceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrSpaceNameRequired),
		errors.Is(err, usecase.ErrInvalidAllocationSpan):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSpaceNotFound):
		return pkg.NewDomainErrorSimple("SPACE_NOT_FOUND", "Space not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
