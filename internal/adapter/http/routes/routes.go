package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "commercial_agent/docs" // This will be auto-generated
	"commercial_agent/internal/adapter/http/handlers"
	repository2 "commercial_agent/internal/adapter/persistence/repository"
	"commercial_agent/internal/infrastructure/agents"
	"commercial_agent/internal/infrastructure/database"
	"commercial_agent/internal/infrastructure/tasks"
	"commercial_agent/internal/usecase"
	"commercial_agent/internal/usecase/interfaces"

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
	quoteRepo := repository2.NewQuoteMemoryRepository()
	leadRepo := newLeadRepository()

	capacityClient := agents.NewCapacityClient()
	costingClient := agents.NewCostingClient()
	dispatchPool := tasks.NewPoolFromEnv()

	quoteSagaUseCase := usecase.NewQuoteSagaUseCase(quoteRepo, capacityClient, costingClient, dispatchPool)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	funnelUseCase := usecase.NewFunnelUseCase(quoteRepo, leadRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteSagaUseCase)
	callbackHandler := handlers.NewCallbackHandler(quoteSagaUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	funnelHandler := handlers.NewFunnelHandler(funnelUseCase)

	startSagaReaper(quoteSagaUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCommercialRoutes(v1, quoteHandler, callbackHandler, leadHandler, funnelHandler)

	if handlers.IsMockAgentsEnabled() {
		log.Printf("[routes] MOCK_EXTERNAL_AGENTS enabled, serving simulated Operations and Finance agents")
		addMockAgentRoutes(v1, handlers.NewMockAgentsHandler())
	}
}

// newLeadRepository selects the lead store. LEADS_BACKEND=dynamodb switches
// to DynamoDB; anything else keeps leads in memory alongside quotes.
func newLeadRepository() interfaces.ILeadRepository {
	if os.Getenv("LEADS_BACKEND") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		return repository2.NewLeadDynamoRepository(ddb)
	}
	return repository2.NewLeadMemoryRepository()
}

// startSagaReaper periodically fails quotes stuck awaiting an agent.
// QUOTE_SAGA_TIMEOUT unset or zero disables it.
func startSagaReaper(uc *usecase.QuoteSagaUseCase) {
	raw := os.Getenv("QUOTE_SAGA_TIMEOUT")
	if raw == "" {
		return
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		log.Printf("[routes] saga reaper disabled, QUOTE_SAGA_TIMEOUT=%q", raw)
		return
	}

	go func() {
		ticker := time.NewTicker(timeout)
		defer ticker.Stop()
		for range ticker.C {
			reaped, err := uc.ReapStalled(context.Background(), timeout)
			if err != nil {
				log.Printf("[routes] saga reaper pass failed: %v", err)
				continue
			}
			if reaped > 0 {
				log.Printf("[routes] saga reaper failed %d stalled quote(s)", reaped)
			}
		}
	}()
	log.Printf("[routes] saga reaper running, timeout=%s", timeout)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
