package routes

import (
	"log"
	"strconv"

	_ "gestauto/docs" // This will be auto-generated
	"gestauto/internal/adapter/http/handlers"
	"gestauto/internal/adapter/http/middleware"
	repository2 "gestauto/internal/adapter/persistence/repository"
	"gestauto/internal/infrastructure/database"
	"gestauto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	receivableRepo := repository2.NewReceivableDynamoRepository(ddb)
	followUpRepo := repository2.NewFollowUpDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)
	spaceRepo := repository2.NewSpaceDynamoRepository(ddb)
	allocationRepo := repository2.NewSpaceAllocationDynamoRepository(ddb)

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, paymentRepo, receivableRepo, clientRepo, vehicleRepo, serviceRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(companyRepo, paymentRepo, receivableRepo, workOrderRepo, clientRepo, spaceRepo, allocationRepo, followUpRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, clientRepo)
	serviceUseCase := usecase.NewServiceCatalogUseCase(serviceRepo)
	receivableUseCase := usecase.NewReceivableUseCase(receivableRepo)
	followUpUseCase := usecase.NewFollowUpUseCase(followUpRepo)
	spaceUseCase := usecase.NewSpaceUseCase(spaceRepo, allocationRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	receivableHandler := handlers.NewReceivableHandler(receivableUseCase)
	followUpHandler := handlers.NewFollowUpHandler(followUpUseCase)
	spaceHandler := handlers.NewSpaceHandler(spaceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Every business route is tenant-scoped.
	authed := v1.Group("", middleware.Auth())
	addWorkOrderRoutes(authed, workOrderHandler)
	addDashboardRoutes(authed, dashboardHandler)
	addCatalogRoutes(authed, clientHandler, vehicleHandler, serviceHandler)
	addFinanceRoutes(authed, receivableHandler, followUpHandler, spaceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
