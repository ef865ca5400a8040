package handler

import (
	"net/http"

	"dealership/internal/middleware"
	"dealership/internal/service"
	"dealership/pkg/pagination"
	"dealership/pkg/response"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler sets up the routing dependencies for Application endpoints
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ApplicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	applications := router.Group("/applications")
	{
		applications.POST("", h.CreateApplication)
		applications.GET("", h.ListApplications)
		applications.GET("/:id", h.GetApplication)
		applications.GET("/tracking/:trackingId", h.GetApplicationByTracking)
		applications.GET("/:id/status-history", h.GetStatusHistory)
		applications.PATCH("/:id", h.UpdateApplicationStatus)
	}
}

// CreateApplication handles application intake
// @Summary      Submit a dealership application
// @Description  Creates a new application in SUBMITTED status and generates a shareable tracking id
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateApplicationRequest  true  "Application payload"
// @Success      201      {object}  response.Response{data=model.Application}
// @Failure      422      {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	app, err := h.applicationService.Create(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, app))
}

// ListApplications returns applications with skip/limit pagination
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Max rows to return"
// @Success      200    {object}  response.ListResponse{data=[]model.Application}
// @Router       /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	params := pagination.Parse(c)

	apps, total, err := h.applicationService.List(c.Request.Context(), params.Skip, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, apps, total, params.Skip, params.Limit))
}

// GetApplication returns a single application by internal id
// @Summary      Get application by id
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  response.Response{data=model.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applicationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}

// GetApplicationByTracking returns a single application by its shareable tracking id
// @Summary      Get application by tracking id
// @Tags         applications
// @Produce      json
// @Param        trackingId  path      string  true  "Tracking id"
// @Success      200         {object}  response.Response{data=model.Application}
// @Failure      404         {object}  response.Response
// @Router       /applications/tracking/{trackingId} [get]
func (h *ApplicationHandler) GetApplicationByTracking(c *gin.Context) {
	app, err := h.applicationService.GetByTrackingID(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}

// GetStatusHistory returns the ordered audit trail of an application
func (h *ApplicationHandler) GetStatusHistory(c *gin.Context) {
	updates, err := h.applicationService.StatusHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, updates))
}

// UpdateApplicationStatus transitions the application lifecycle state
// @Summary      Update application status
// @Description  Transitions the application to a new status and appends an audit record
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Application id"
// @Param        payload  body      service.UpdateStatusRequest  true  "New status and optional notes"
// @Success      200      {object}  response.Response{data=model.Application}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), c.Param("id"), req, middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}
