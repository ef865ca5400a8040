package handler

import (
	"net/http"

	"dealership/internal/service"
	"dealership/pkg/response"

	"github.com/gin-gonic/gin"
)

type LetterHandler struct {
	letterService service.LetterService
}

// NewLetterHandler sets up the routing dependencies for ApprovalLetter endpoints
func NewLetterHandler(letterService service.LetterService) *LetterHandler {
	return &LetterHandler{letterService: letterService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *LetterHandler) RegisterRoutes(router *gin.RouterGroup) {
	letters := router.Group("/approval-letters")
	{
		letters.POST("", h.IssueLetter)
		letters.GET("/:applicationId", h.GetLetter)
	}
}

// IssueLetter issues the approval letter for an approved application
// @Summary      Issue an approval letter
// @Description  Creates the single approval letter an approved application may carry
// @Tags         approval-letters
// @Accept       json
// @Produce      json
// @Param        payload  body      service.IssueLetterRequest  true  "Letter payload"
// @Success      201      {object}  response.Response{data=model.ApprovalLetter}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /approval-letters [post]
func (h *LetterHandler) IssueLetter(c *gin.Context) {
	var req service.IssueLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	letter, err := h.letterService.Issue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, letter))
}

// GetLetter returns the approval letter for an application
func (h *LetterHandler) GetLetter(c *gin.Context) {
	letter, err := h.letterService.GetByApplicationID(c.Request.Context(), c.Param("applicationId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, letter))
}
