package delivery

import (
	"net/http"

	"jobtrail-backend/internal/jobpost/dto"
	"jobtrail-backend/internal/jobpost/usecase"

	"github.com/gin-gonic/gin"
)

type JobPostHandler struct {
	extractUsecase usecase.ExtractUsecase
}

func NewJobPostHandler(extractUsecase usecase.ExtractUsecase) *JobPostHandler {
	return &JobPostHandler{extractUsecase: extractUsecase}
}

func (h *JobPostHandler) ParseURL(c *gin.Context) {
	var req dto.ParseURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	posting, err := h.extractUsecase.Extract(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posting)
}
