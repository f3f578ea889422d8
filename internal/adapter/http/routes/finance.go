package routes

import (
	"gestauto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReceivables = "/receivables"
	PathFollowUps   = "/follow-ups"
	PathSpaces      = "/spaces"
)

func addFinanceRoutes(rg *gin.RouterGroup, receivableHandler *handlers.ReceivableHandler, followUpHandler *handlers.FollowUpHandler, spaceHandler *handlers.SpaceHandler) {
	receivables := rg.Group(PathReceivables)
	{
		receivables.GET("", receivableHandler.FindAll)
		receivables.PATCH("/:id/settle", receivableHandler.Settle)
	}

	followUps := rg.Group(PathFollowUps)
	{
		followUps.GET("", followUpHandler.FindAll)
		followUps.PATCH("/:id/done", followUpHandler.MarkDone)
	}

	spaces := rg.Group(PathSpaces)
	{
		spaces.POST("", spaceHandler.Create)
		spaces.POST("/:id/allocations", spaceHandler.Allocate)
	}
}
