package handler

import (
	"net/http"

	"dealership/internal/service"
	"dealership/pkg/pagination"
	"dealership/pkg/response"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	supportService service.SupportService
}

// NewSupportHandler sets up the routing dependencies for SupportRequest endpoints
func NewSupportHandler(supportService service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *SupportHandler) RegisterRoutes(router *gin.RouterGroup) {
	support := router.Group("/support")
	{
		support.POST("", h.CreateSupportRequest)
		support.GET("", h.ListSupportRequests)
		support.GET("/:id", h.GetSupportRequest)
		support.PATCH("/:id", h.ResolveSupportRequest)
	}
}

// CreateSupportRequest opens a new support ticket
func (h *SupportHandler) CreateSupportRequest(c *gin.Context) {
	var req service.CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	ticket, err := h.supportService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, ticket))
}

// ListSupportRequests returns tickets with skip/limit pagination
func (h *SupportHandler) ListSupportRequests(c *gin.Context) {
	params := pagination.Parse(c)

	requests, total, err := h.supportService.List(c.Request.Context(), params.Skip, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, requests, total, params.Skip, params.Limit))
}

// GetSupportRequest returns a single ticket by id
func (h *SupportHandler) GetSupportRequest(c *gin.Context) {
	ticket, err := h.supportService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, ticket))
}

// ResolveSupportRequest flips the resolved flag on a ticket
func (h *SupportHandler) ResolveSupportRequest(c *gin.Context) {
	var req service.ResolveSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	ticket, err := h.supportService.Resolve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, ticket))
}
