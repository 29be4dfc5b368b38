package routes

import (
	"ar_credit_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathReviews = "/reviews"
)

func addCreditRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, reviewHandler *handlers.ReviewHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.EvaluateOrder)
		orders.GET("/:order_id/decision", orderHandler.GetDecision)
		orders.GET("/:order_id/run", orderHandler.GetRun)
		orders.GET("/:order_id/audit", orderHandler.GetAuditTrail)
		orders.POST("/:order_id/review", reviewHandler.SubmitDecision)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("", reviewHandler.ListPending)
	}
}
