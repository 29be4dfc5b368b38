package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ar_credit_service/internal/adapter/http/dto/request"
	response "ar_credit_service/internal/adapter/http/dto/response"
	"ar_credit_service/internal/domain/policy"
	"ar_credit_service/internal/domain/workflow"
	"ar_credit_service/internal/usecase"
	"ar_credit_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles order intake and evaluation lookups.

type OrderHandler struct {
	usecase usecase.ICreditWorkflowUseCase
}

func NewOrderHandler(uc usecase.ICreditWorkflowUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// EvaluateOrder accepts a sales order and runs the credit decision
// workflow. Terminal outcomes answer 200 with the decision; escalated
// orders answer 202 with the run parked awaiting human input.
// Resubmitting a known order id returns the stored outcome.
func (h *OrderHandler) EvaluateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ResolveOrder()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.EvaluateOrder(c.Request.Context(), order)
	if err != nil {
		log.Printf("[order][handler] evaluate failed order_id=%s err=%v", order.ID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if outcome.Decision == nil {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromEvaluation(outcome.Run, outcome.Decision))
}

// GetDecision returns the stored terminal decision for an order.
func (h *OrderHandler) GetDecision(c *gin.Context) {
	decision, err := h.usecase.GetDecision(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(decision))
}

// GetRun returns the current workflow run with its step history.
func (h *OrderHandler) GetRun(c *gin.Context) {
	run, err := h.usecase.GetRun(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRun(run))
}

// GetAuditTrail returns the full append-only decision trail.
func (h *OrderHandler) GetAuditTrail(c *gin.Context) {
	records, err := h.usecase.GetAuditTrail(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidOrderAmount),
		errors.Is(err, usecase.ErrInvalidHumanStatus),
		errors.Is(err, usecase.ErrInvalidRationale):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, policy.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_DATA", "Customer or order data failed validation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found in customer master", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDecisionNotFound):
		return pkg.NewDomainErrorSimple("DECISION_NOT_FOUND", "No decision recorded for this order", http.StatusNotFound)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Run is not awaiting human input", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
