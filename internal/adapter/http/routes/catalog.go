package routes

import (
	"gestauto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathVehicles = "/vehicles"
	PathServices = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, vehicleHandler *handlers.VehicleHandler, serviceHandler *handlers.ServiceHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.FindAll)
		clients.GET("/:id", clientHandler.FindOne)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.FindAll)
		vehicles.GET("/:id", vehicleHandler.FindOne)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.FindAll)
		services.GET("/:id", serviceHandler.FindOne)
		services.PATCH("/:id", serviceHandler.Update)
	}
}
