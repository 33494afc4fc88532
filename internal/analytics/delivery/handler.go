package delivery

import (
	"net/http"

	"jobtrail-backend/internal/analytics/usecase"
	identitydelivery "jobtrail-backend/internal/identity/delivery"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

func (h *AnalyticsHandler) Get(c *gin.Context) {
	claims := identitydelivery.ClaimsFromContext(c)

	summary, err := h.analyticsUsecase.Compute(claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
