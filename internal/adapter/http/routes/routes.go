package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "ar_credit_service/docs" // This will be auto-generated
	cronjobs "ar_credit_service/internal/adapter/cron"
	"ar_credit_service/internal/adapter/http/handlers"
	repository2 "ar_credit_service/internal/adapter/persistence/repository"
	"ar_credit_service/internal/domain/policy"
	"ar_credit_service/internal/infrastructure/advisory"
	"ar_credit_service/internal/infrastructure/database"
	"ar_credit_service/internal/infrastructure/notifications"
	"ar_credit_service/internal/usecase"
	"ar_credit_service/internal/usecase/interfaces"

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

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	runRepo := repository2.NewWorkflowRunDynamoRepository(ddb)
	decisionRepo := repository2.NewDecisionDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)

	limits, err := policy.LoadLimits(os.Getenv("POLICY_LIMITS_FILE"))
	if err != nil {
		log.Fatalf("Failed to load policy limits: %v", err)
	}
	evaluator := policy.NewEvaluator(limits)

	var advisoryGateway interfaces.IAdvisoryGateway
	advisor, err := advisory.NewHTTPAdvisor(os.Getenv("ADVISORY_ENDPOINT"), os.Getenv("ADVISORY_API_KEY"))
	if err != nil {
		log.Printf("Advisory gateway not configured: %v", err)
	} else {
		advisoryGateway = advisor
	}
	aggregator := usecase.NewAssessmentAggregator(advisoryGateway).
		WithRetryPolicy(getenvInt("ADVISORY_ATTEMPTS", 0), getenvDuration("ADVISORY_BACKOFF", 0), getenvDuration("ADVISORY_TIMEOUT", 0))

	notifier := notifications.NewWebhookNotifier(os.Getenv("REVIEW_WEBHOOK_URL"), os.Getenv("DECISION_WEBHOOK_URL"))

	workflowUseCase := usecase.NewCreditWorkflowUseCase(customerRepo, runRepo, decisionRepo, auditRepo, notifier, evaluator, aggregator).
		WithReservationTTL(getenvDuration("RESERVATION_TTL", 0))

	reminder := cronjobs.NewReviewReminder(workflowUseCase, os.Getenv("REVIEW_REMINDER_SCHEDULE"), getenvDuration("REVIEW_REMINDER_MIN_AGE", 0), context.Background())
	if err := reminder.Start(); err != nil {
		log.Fatalf("Failed to start review reminder: %v", err)
	}

	orderHandler := handlers.NewOrderHandler(workflowUseCase)
	reviewHandler := handlers.NewReviewHandler(workflowUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCreditRoutes(v1, orderHandler, reviewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return def
	}
	return d
}
