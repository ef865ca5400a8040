package handler

import (
	"net/http"

	"dealership/internal/service"
	"dealership/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler sets up the routing dependencies for Payment endpoints
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("/:id", h.GetPayment)
		payments.GET("/application/:applicationId", h.ListPaymentsByApplication)
		payments.PATCH("/:id", h.UpdatePayment)
	}
}

// CreatePayment records a payment attempt against an application
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePaymentRequest  true  "Payment payload"
// @Success      201      {object}  response.Response{data=model.Payment}
// @Failure      404      {object}  response.Response
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, payment))
}

// GetPayment returns a single payment by id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payment))
}

// ListPaymentsByApplication returns all payments recorded for one application
func (h *PaymentHandler) ListPaymentsByApplication(c *gin.Context) {
	payments, err := h.paymentService.ListByApplication(c.Request.Context(), c.Param("applicationId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payments))
}

// UpdatePayment applies a partial update: only fields present in the body change
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Payment id"
// @Param        payload  body      service.UpdatePaymentRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=model.Payment}
// @Failure      404      {object}  response.Response
// @Router       /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payment))
}
