package delivery

import (
	"errors"
	"net/http"

	"jobtrail-backend/internal/application/dto"
	"jobtrail-backend/internal/application/usecase"
	identitydelivery "jobtrail-backend/internal/identity/delivery"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
}

func NewApplicationHandler(applicationUsecase usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)
	apps, err := h.applicationUsecase.List(claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.applicationUsecase.Create(claims.Subject, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing application ID"})
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.applicationUsecase.Update(claims.Subject, id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoUpdatableFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing application ID"})
		return
	}

	if err := h.applicationUsecase.Delete(claims.Subject, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
