package handlers

import (
	"errors"
	"net/http"

	"gestauto/internal/adapter/http/dto/response"
	"gestauto/internal/adapter/http/middleware"
	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase"
	"gestauto/pkg"

	"github.com/gin-gonic/gin"
)

// FollowUpHandler lists and closes post-sale contacts.

type FollowUpHandler struct {
	usecase usecase.IFollowUpUseCase
}

func NewFollowUpHandler(uc usecase.IFollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{usecase: uc}
}

func (h *FollowUpHandler) FindAll(c *gin.Context) {
	var status *entities.FollowUpStatus
	if s := c.Query("status"); s != "" {
		v := entities.FollowUpStatus(s)
		status = &v
	}

	followUps, err := h.usecase.FindAll(c.Request.Context(), middleware.CompanyID(c), status)
	if err != nil {
		appErr := mapFollowUpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFollowUps(followUps))
}

func (h *FollowUpHandler) MarkDone(c *gin.Context) {
	done, err := h.usecase.MarkDone(c.Request.Context(), middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		appErr := mapFollowUpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFollowUp(done))
}

func mapFollowUpError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidFollowUpStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFollowUpNotFound):
		return pkg.NewDomainErrorSimple("FOLLOW_UP_NOT_FOUND", "Follow-up not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
