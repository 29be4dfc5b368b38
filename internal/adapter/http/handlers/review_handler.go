package handlers

import (
	"log"
	"net/http"

	request "ar_credit_service/internal/adapter/http/dto/request"
	response "ar_credit_service/internal/adapter/http/dto/response"
	"ar_credit_service/internal/usecase"
	"ar_credit_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
)

// ReviewHandler is the inbound side of the human review channel.

type ReviewHandler struct {
	usecase usecase.ICreditWorkflowUseCase
}

func NewReviewHandler(uc usecase.ICreditWorkflowUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// SubmitDecision resumes a run parked in awaiting_human_input with the
// reviewer's approve/reject decision. A resume on a run that is not
// awaiting input (including a second resume) answers 409.
func (h *ReviewHandler) SubmitDecision(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	decision, err := h.usecase.SubmitHumanDecision(c.Request.Context(), orderID, payload.ResolveStatus(), payload.ResolveRationale())
	if err != nil {
		log.Printf("[review][handler] submit failed order_id=%s err=%v", orderID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDecision(decision))
}

// ListPending returns the runs currently awaiting human input.
func (h *ReviewHandler) ListPending(c *gin.Context) {
	runs, err := h.usecase.ListAwaitingReview(c.Request.Context())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, response.FromRun(run))
	}
	c.JSON(http.StatusOK, out)
}
