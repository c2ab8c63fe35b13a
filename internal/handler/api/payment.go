package api

import (
	"errors"
	"net/http"

	reqdto "smakownia-backend/internal/handler/dto/request"
	resdto "smakownia-backend/internal/handler/dto/response"
	"smakownia-backend/internal/handler/httperr"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/usecase/commands"
	"smakownia-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Create payment
// @Description Register a transaction with the payment gateway and return the redirect URL
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Checkout form data"
// @Success 201 {object} resdto.CreatePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /create-payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.paymentCommands.CreatePayment(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary Retry payment
// @Description Re-initiate a failed purchase under a fresh session
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Checkout form data"
// @Success 201 {object} resdto.CreatePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /retry-payment [post]
func (h *PaymentHandler) RetryPayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.paymentCommands.RetryPayment(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary Get payment status
// @Description Read the transaction's current state from the gateway
// @Tags payments
// @Produce json
// @Param sessionId query string true "Payment session ID"
// @Param fresh query bool false "Buyer just returned from checkout; re-poll a pending state"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payment-status [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Session ID required", nil)
		return
	}

	// A fresh read means the buyer just landed back from checkout; a pending
	// state gets the bounded re-poll instead of a single read.
	var result *queries.StatusResult
	var err error
	if c.Query("fresh") == "true" {
		result, err = h.paymentQueries.ProcessReturn(c.Request.Context(), sessionID, 0)
	} else {
		result, err = h.paymentQueries.GetStatus(c.Request.Context(), sessionID)
	}
	if err != nil {
		h.abortStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusResult(result))
}

// @Summary Process buyer return
// @Description Resolve the payment state after the buyer lands back on the storefront
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessPaymentRequest true "Return redirect parameters"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /process-payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.paymentQueries.ProcessReturn(c.Request.Context(), req.SessionID, req.OrderID)
	if err != nil {
		h.abortStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusResult(result))
}

func (h *PaymentHandler) abortRegistrationError(c *gin.Context, err error) {
	var regErr *przelewy24.RegistrationError
	switch {
	case errors.Is(err, errs.ErrGatewayConfigMissing):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment gateway is not configured", nil)
	case errors.Is(err, errs.ErrInvalidItemType), errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment data", nil)
	case errors.Is(err, errs.ErrDatabaseOperationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	case errors.As(err, &regErr):
		// The gateway's raw rejection body is the only diagnostic there is.
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", string(regErr.RawBody))
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
	}
}

func (h *PaymentHandler) abortStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrGatewayConfigMissing):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment gateway is not configured", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
	}
}
