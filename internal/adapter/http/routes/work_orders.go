package routes

import (
	"gestauto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathDashboard  = "/dashboard"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.Create)
		workOrders.GET("", workOrderHandler.FindAll)
		workOrders.GET("/:id", workOrderHandler.FindOne)
		workOrders.PATCH("/:id", workOrderHandler.Update)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/overview", dashboardHandler.Overview)
	}
}
